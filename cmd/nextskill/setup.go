// Package main provides the entry point for the nextskill CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/output"
	"github.com/seaward/nextskill/internal/setup"
)

// integrationInfo describes an available integration.
type integrationInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Installed   bool   `json:"installed"`
	Scope       string `json:"scope,omitempty"`
	Location    string `json:"location,omitempty"`
}

// newSetupCmd creates the setup parent command with subcommands.
func newSetupCmd() *cobra.Command {
	var listFlag bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure editor and tool integrations",
		Long: `Configure nextskill integrations with editors and development tools.

Subcommands:
  claude    Install Claude Code integration (session hook + MCP server)

Flags:
  --list    List available integrations and their status

Examples:
  nextskill setup --list           # List available integrations
  nextskill setup claude           # Install Claude Code integration globally
  nextskill setup claude --project # Install for current project only
  nextskill setup claude --check   # Check installation status
  nextskill setup claude --remove  # Remove integration`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listFlag {
				return runSetupList(cmd)
			}
			return cmd.Help()
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "List available integrations and their status")

	cmd.AddCommand(newSetupClaudeCmd())
	return cmd
}

// newSetupClaudeCmd creates the claude subcommand for setup.
func newSetupClaudeCmd() *cobra.Command {
	var (
		projectFlag bool
		checkFlag   bool
		removeFlag  bool
		dryRunFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "claude",
		Short: "Install Claude Code integration",
		Long: `Install nextskill integration with Claude Code.

Two pieces are installed:
  - A session-start hook that runs detection and injects the Next.js
    context into the conversation
  - An MCP server registration so the agent can call detect and browse
    skills on demand

By default, installs globally (~/.claude/). Use --project to install for
the current directory only.

Examples:
  nextskill setup claude           # Install globally
  nextskill setup claude --project # Install for this project
  nextskill setup claude --check   # Check if installed
  nextskill setup claude --remove  # Uninstall
  nextskill setup claude --dry-run # Show what would be done`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetupClaude(cmd, projectFlag, checkFlag, removeFlag, dryRunFlag)
		},
	}

	cmd.Flags().BoolVar(&projectFlag, "project", false, "Install for this project only")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check installation status without changes")
	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the integration")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runSetupClaude executes the setup claude command.
func runSetupClaude(cmd *cobra.Command, project, check, remove, dryRun bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	hookPath, scope, err := setup.ResolveClaudeHookPath(project)
	if err != nil {
		printer.Error(err)
		return err
	}
	mcpPath, _, err := setup.ResolveMCPConfigPath(project)
	if err != nil {
		printer.Error(err)
		return err
	}

	switch {
	case check:
		return runSetupClaudeCheck(printer, hookPath, mcpPath, scope)
	case remove:
		return runSetupClaudeRemove(printer, hookPath, mcpPath, scope, dryRun)
	default:
		return runSetupClaudeInstall(printer, hookPath, mcpPath, scope, dryRun)
	}
}

// runSetupClaudeCheck reports the installation status.
func runSetupClaudeCheck(printer *output.Printer, hookPath, mcpPath, scope string) error {
	hookInstalled := setup.IsSectionInstalled(hookPath)
	mcpRegistered := setup.IsMCPRegistered(mcpPath)

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"integration":    "claude",
			"installed":      hookInstalled && mcpRegistered,
			"hook_installed": hookInstalled,
			"mcp_registered": mcpRegistered,
			"hook_location":  hookPath,
			"mcp_location":   mcpPath,
			"scope":          scope,
		})
	}

	printer.Section("Claude Integration Status")
	printer.KeyValue("Scope", scope)
	printer.KeyValue("Session Hook", formatInstalled(hookInstalled, hookPath))
	printer.KeyValue("MCP Server", formatInstalled(mcpRegistered, mcpPath))
	return nil
}

// formatInstalled renders an installed/not-installed status with location.
func formatInstalled(installed bool, location string) string {
	if installed {
		return "installed (" + location + ")"
	}
	return "not installed"
}

// runSetupClaudeRemove removes the nextskill hook section and MCP entry.
func runSetupClaudeRemove(printer *output.Printer, hookPath, mcpPath, scope string, dryRun bool) error {
	hookInstalled := setup.IsSectionInstalled(hookPath)
	mcpRegistered := setup.IsMCPRegistered(mcpPath)

	if !hookInstalled && !mcpRegistered {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status":      "not_installed",
				"integration": "claude",
				"scope":       scope,
			})
		}
		return printer.Success(map[string]any{
			"message": "Claude integration is not installed",
		})
	}

	if dryRun {
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status":         "dry_run",
				"integration":    "claude",
				"action":         "would remove",
				"hook_location":  hookPath,
				"mcp_location":   mcpPath,
				"scope":          scope,
				"hook_installed": hookInstalled,
				"mcp_registered": mcpRegistered,
			})
		}
		printer.Section("Dry Run")
		printer.KeyValue("Action", "would remove nextskill integration")
		if hookInstalled {
			printer.KeyValue("Session Hook", hookPath)
		}
		if mcpRegistered {
			printer.KeyValue("MCP Server", mcpPath)
		}
		return nil
	}

	if hookInstalled {
		if err := setup.RemoveSectionFromHook(hookPath); err != nil {
			printer.Error(err)
			return err
		}
	}
	if mcpRegistered {
		if err := setup.DeregisterMCPServer(mcpPath); err != nil {
			printer.Error(err)
			return err
		}
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":      "removed",
			"integration": "claude",
			"scope":       scope,
		})
	}
	return printer.Success(map[string]any{
		"message": "Removed Claude integration (" + scope + ")",
	})
}

// runSetupClaudeInstall installs the session hook and registers the MCP server.
func runSetupClaudeInstall(printer *output.Printer, hookPath, mcpPath, scope string, dryRun bool) error {
	installed := setup.IsSectionInstalled(hookPath) && setup.IsMCPRegistered(mcpPath)

	if dryRun {
		action := "would install"
		if installed {
			action = "would update (already installed)"
		}

		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status":            "dry_run",
				"integration":       "claude",
				"action":            action,
				"hook_location":     hookPath,
				"mcp_location":      mcpPath,
				"scope":             scope,
				"already_installed": installed,
			})
		}
		printer.Section("Dry Run")
		printer.KeyValue("Action", action)
		printer.KeyValue("Session Hook", hookPath)
		printer.KeyValue("MCP Server", mcpPath)
		return nil
	}

	if err := setup.InstallSection(hookPath); err != nil {
		printer.Error(err)
		return err
	}
	if err := setup.RegisterMCPServer(mcpPath); err != nil {
		printer.Error(err)
		return err
	}

	msg := "Installed"
	if installed {
		msg = "Updated"
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":        "installed",
			"integration":   "claude",
			"hook_location": hookPath,
			"mcp_location":  mcpPath,
			"scope":         scope,
		})
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("%s Claude integration (%s)", msg, scope),
	})
}

// runSetupList lists available integrations and their status.
func runSetupList(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	integrations := make([]integrationInfo, 0, len(setup.AllAgentEnvs()))
	for _, env := range setup.AllAgentEnvs() {
		location, scope, installed := env.Detect()
		info := integrationInfo{
			Name:        env.Name(),
			Description: env.DisplayName() + " session context injection",
			Installed:   installed,
		}
		if installed {
			info.Scope = scope
			info.Location = location
		}
		integrations = append(integrations, info)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"integrations": integrations,
		})
	}

	printer.Section("Available Integrations")
	headers := []string{"Name", "Description", "Status", "Scope"}
	rows := make([][]string, 0, len(integrations))
	for _, integ := range integrations {
		status := "not installed"
		if integ.Installed {
			status = "installed"
		}
		scope := "-"
		if integ.Scope != "" {
			scope = integ.Scope
		}
		rows = append(rows, []string{integ.Name, integ.Description, status, scope})
	}
	printer.Table(headers, rows)
	return nil
}
