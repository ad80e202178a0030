// Package main provides the entry point for the nextskill CLI.
package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/seaward/nextskill/internal/detect"
	"github.com/seaward/nextskill/internal/setup"
	"github.com/seaward/nextskill/internal/skill"
)

// runCoreChecks performs core infrastructure checks.
func runCoreChecks() []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkBinaryInPath())
	checks = append(checks, checkSkillsCorpus())
	return checks
}

// checkBinaryInPath checks where the nextskill binary resolves to.
func checkBinaryInPath() checkResult {
	execPath, err := os.Executable()
	if err != nil {
		return checkResult{
			Name:    "Binary in PATH",
			Status:  checkWarn,
			Message: "could not determine executable path",
		}
	}

	resolvedPath, resolveErr := filepath.EvalSymlinks(execPath)
	if resolveErr != nil {
		return checkResult{
			Name:    "Binary in PATH",
			Status:  checkWarn,
			Message: "could not resolve executable path",
		}
	}

	return checkResult{
		Name:    "Binary in PATH",
		Status:  checkPass,
		Message: resolvedPath,
	}
}

// checkSkillsCorpus verifies the built-in skills load and parse.
func checkSkillsCorpus() checkResult {
	infos, err := skill.List("")
	if err != nil {
		return checkResult{
			Name:    "Skills Corpus",
			Status:  checkFail,
			Message: "could not load skills: " + err.Error(),
		}
	}
	if len(infos) == 0 {
		return checkResult{
			Name:    "Skills Corpus",
			Status:  checkFail,
			Message: "no skills available",
		}
	}
	return checkResult{
		Name:    "Skills Corpus",
		Status:  checkPass,
		Message: strconv.Itoa(len(infos)) + " skill(s) available",
	}
}

// runProjectChecks performs checks against the current directory.
func runProjectChecks() []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkAppDetectable()...)
	return checks
}

// checkAppDetectable runs detection from the working directory and
// reports what it finds. No app is a warning, not a failure: doctor is
// often run outside a project.
func checkAppDetectable() []checkResult {
	cwd, err := os.Getwd()
	if err != nil {
		return []checkResult{{
			Name:    "Next.js App",
			Status:  checkWarn,
			Message: "could not determine working directory",
		}}
	}

	ctx, count := detect.Detect(cwd, cwd)
	if ctx == nil {
		return []checkResult{{
			Name:    "Next.js App",
			Status:  checkWarn,
			Message: "no Next.js app found in " + cwd,
			Hint:    "Run from a directory containing a Next.js project",
		}}
	}

	checks := []checkResult{{
		Name:    "Next.js App",
		Status:  checkPass,
		Message: strconv.Itoa(count) + " app(s) found, active: " + ctx.ActiveApp,
	}}

	if ctx.NextJS.Version == "unknown" {
		checks = append(checks, checkResult{
			Name:    "Next.js Version",
			Status:  checkWarn,
			Message: "version could not be determined",
			Hint:    "Install dependencies so a lockfile records the resolved version",
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "Next.js Version",
			Status:  checkPass,
			Message: ctx.NextJS.Version,
		})
	}

	return checks
}

// runIntegrationChecks performs integration-related checks.
func runIntegrationChecks(flags *doctorFlags) []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkSessionHook(flags))
	checks = append(checks, checkMCPRegistration(flags))
	return checks
}

// checkSessionHook checks if the Claude session hook is installed.
func checkSessionHook(flags *doctorFlags) checkResult {
	if status := setup.CheckHookStatus(); status.Installed {
		return checkResult{
			Name:    "Session Hook",
			Status:  checkPass,
			Message: "installed (" + status.Scope + ")",
		}
	}

	if flags.fix {
		hookPath, scope, err := setup.ResolveClaudeHookPath(false)
		if err == nil {
			if err := setup.InstallSection(hookPath); err == nil {
				return checkResult{
					Name:    "Session Hook",
					Status:  checkPass,
					Message: "installed (" + scope + ", auto-fixed)",
				}
			}
		}
	}

	return checkResult{
		Name:    "Session Hook",
		Status:  checkWarn,
		Message: "Claude session hook not installed",
		Hint:    "Run 'nextskill setup claude' or 'nextskill doctor --fix'",
	}
}

// checkMCPRegistration checks if the MCP server is registered.
func checkMCPRegistration(flags *doctorFlags) checkResult {
	for _, project := range []bool{true, false} {
		path, scope, err := setup.ResolveMCPConfigPath(project)
		if err != nil {
			continue
		}
		if setup.IsMCPRegistered(path) {
			return checkResult{
				Name:    "MCP Server",
				Status:  checkPass,
				Message: "registered (" + scope + ")",
			}
		}
	}

	if flags.fix {
		path, scope, err := setup.ResolveMCPConfigPath(false)
		if err == nil {
			if err := setup.RegisterMCPServer(path); err == nil {
				return checkResult{
					Name:    "MCP Server",
					Status:  checkPass,
					Message: "registered (" + scope + ", auto-fixed)",
				}
			}
		}
	}

	return checkResult{
		Name:    "MCP Server",
		Status:  checkWarn,
		Message: "MCP server not registered",
		Hint:    "Run 'nextskill setup claude' or 'nextskill doctor --fix'",
	}
}
