// Package main provides the entry point for the nextskill CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/detect"
	"github.com/seaward/nextskill/internal/output"
)

// newDetectCmd creates the detect command.
func newDetectCmd() *cobra.Command {
	var quietFlag bool
	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Detect Next.js projects and emit session context",
		Long: `Detect Next.js projects under a directory and emit the session context.

Scans the directory tree for package.json files declaring a next dependency,
inspects the closest app to the working directory, and emits a JSON context
blob: version, router type, package manager, TypeScript config, test
framework, styling, derived commands, and guidance.

When no Next.js app is found the command prints nothing and exits 0, so it
is safe to run unconditionally from session hooks.

Examples:
  nextskill detect            # Scan the current directory
  nextskill detect ~/src/web  # Scan a specific directory
  nextskill detect --quiet    # Suppress output, exit 0 either way`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, quietFlag)
		},
	}
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress output")
	return cmd
}

// runDetect executes the detect command.
func runDetect(cmd *cobra.Command, args []string, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	root, cwd, err := resolveDetectDirs(args)
	if err != nil {
		printer.Error(err)
		return err
	}

	ctx, _ := detect.Detect(root, cwd)
	if ctx == nil || quiet {
		// No Next.js app here. Stay silent so hooks add nothing to
		// sessions outside Next.js projects.
		return nil
	}

	// The context blob is the contract, in both modes.
	return printer.WriteJSON(ctx)
}

// resolveDetectDirs determines the scan root and the directory used to
// pick the active app when several are found.
func resolveDetectDirs(args []string) (root, cwd string, err error) {
	cwd, err = os.Getwd()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
	}

	root = cwd
	if len(args) > 0 {
		root = args[0]
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}
	}
	return root, cwd, nil
}
