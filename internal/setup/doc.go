// Package setup provides business logic for installing and managing
// nextskill integrations: the Claude Code session-start hook and the
// MCP server registration.
//
// This package contains pure functions for hook generation, install,
// and removal. Command-layer adapters in cmd/nextskill/ handle CLI
// concerns (flags, output formatting, cobra wiring) and delegate to
// this package for the actual work.
//
// # Session hook
//
//	path, scope, err := setup.ResolveClaudeHookPath(false)
//	installed := setup.IsSectionInstalled(path)
//	err := setup.InstallSection(path)
//	err := setup.RemoveSectionFromHook(path)
//
// # MCP registration
//
//	path, scope, err := setup.ResolveMCPConfigPath(true)
//	registered := setup.IsMCPRegistered(path)
//	err := setup.RegisterMCPServer(path)
package setup
