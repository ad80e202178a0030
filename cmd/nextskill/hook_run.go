// Package main provides the entry point for the nextskill CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/detect"
	"github.com/seaward/nextskill/internal/output"
)

// newHookCmd creates the hidden hook parent command for internal hook execution.
func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "hook",
		Short:  "Internal hook runner",
		Long:   `Internal command for running hook logic. Called by agent session hooks.`,
		Hidden: true,
	}

	cmd.AddCommand(newHookRunCmd())
	return cmd
}

// newHookRunCmd creates the hook run subcommand.
func newHookRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <hook-name>",
		Short: "Execute hook logic",
		Long:  `Execute the logic for the specified hook. Called by installed session hooks.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runHookRun,
	}
}

// runHookRun executes the hook run command.
func runHookRun(cmd *cobra.Command, args []string) error {
	hookName := args[0]

	switch hookName {
	case "session-start":
		return runSessionStartHook(cmd)
	default:
		// Unknown hook - silently succeed to not block sessions
		return nil
	}
}

// runSessionStartHook executes the session-start hook logic. It runs
// detection from the working directory and prints the context blob.
// This never returns an error: a hook failure must not break the
// agent session it runs inside.
func runSessionStartHook(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return nil //nolint:nilerr // hook must not block session start
	}

	ctx, _ := detect.Detect(cwd, cwd)
	if ctx == nil {
		// Not a Next.js project - add nothing to the session
		return nil
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
	_ = printer.WriteJSON(ctx)
	return nil
}
