// Package main provides the entry point for the nextskill CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/config"
	"github.com/seaward/nextskill/internal/envfile"
	"github.com/seaward/nextskill/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
// This keeps commands independently testable without shared mutable state.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor reports whether human output should be styled.
func useColor(cmd *cobra.Command) bool {
	return output.IsTTY(cmd.OutOrStdout())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the nextskill CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nextskill",
		Short: "Next.js project detection and skills for coding agents",
		Long: `Nextskill - Next.js project detection and a curated skills corpus for coding agents.

Nextskill keeps agent sessions grounded in the project in front of them by:
  - Detecting Next.js apps: version, router type, package manager, TypeScript
  - Deriving the exact dev/build/test/lint commands for the project
  - Serving a tiered skills corpus (micro, compact, reference) on demand
  - Injecting context at Claude Code session start via a hook

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'nextskill --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Add persistent --json flag (available to all subcommands)
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	// Define command groups and add commands
	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. ~/.config/nextskill/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "skills", Title: "Skill Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Core commands: detect, status
	addGroupedCommand(cmd, newDetectCmd(), "core")
	addGroupedCommand(cmd, newStatusCmd(), "core")

	// Skill commands: skill list/show
	addGroupedCommand(cmd, newSkillCmd(), "skills")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")

	// Admin commands: setup, uninstall, doctor
	addGroupedCommand(cmd, newSetupCmd(), "admin")
	addGroupedCommand(cmd, newUninstallCmd(), "admin")
	addGroupedCommand(cmd, newDoctorCmd(), "admin")

	// Hidden internal commands
	cmd.AddCommand(newHookCmd())
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
