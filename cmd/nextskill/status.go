// Package main provides the entry point for the nextskill CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/detect"
	"github.com/seaward/nextskill/internal/output"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [dir]",
		Short: "Show detected Next.js project state",
		Long: `Show the detected state of the Next.js project in a directory.

Displays the active app, Next.js version and router type, package manager,
TypeScript configuration, test framework, styling, and the derived commands.

Examples:
  nextskill status          # Show human-readable detection results
  nextskill status --json   # Output the raw context blob as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStatus,
	}
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	root, cwd, err := resolveDetectDirs(args)
	if err != nil {
		printer.Error(err)
		return err
	}

	ctx, count := detect.Detect(root, cwd)
	if ctx == nil {
		userErr := output.NewUserError("no Next.js app found under " + root)
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(ctx)
	}

	printHumanStatus(printer, ctx, count)
	return nil
}

// printHumanStatus outputs the detection context in human-readable format.
func printHumanStatus(printer *output.Printer, ctx *detect.Context, count int) {
	printer.Section("Project")
	printer.KeyValue("Active App", ctx.ActiveApp)
	if count > 1 {
		printer.KeyValue("Apps Found", strconv.Itoa(count))
	}

	printer.Section("Next.js")
	printer.KeyValue("Version", ctx.NextJS.Version)
	printer.KeyValue("Router", string(ctx.NextJS.Router))
	printer.KeyValue("Latest", formatBool(ctx.NextJS.IsLatest))

	printer.Section("Toolchain")
	printer.KeyValue("Package Manager", ctx.PackageManager.Name)
	printer.KeyValue("TypeScript", formatTypeScript(ctx.TypeScript))
	printer.KeyValue("Test Framework", ctx.TestFramework)
	printer.KeyValue("Styling", ctx.Styling)
	printer.KeyValue("Devtools MCP", formatBool(ctx.DevtoolsMCP.Configured))

	printer.Section("Commands")
	printer.KeyValue("Dev", ctx.Commands.Dev)
	printer.KeyValue("Build", ctx.Commands.Build)
	printer.KeyValue("Test", ctx.Commands.Test)
	printer.KeyValue("Lint", ctx.Commands.Lint)

	if ctx.Guidance != nil {
		printer.Section("Guidance")
		printer.Println(*ctx.Guidance)
	}
}

// formatTypeScript renders the TypeScript state as a short string.
func formatTypeScript(ts detect.TypeScriptInfo) string {
	if !ts.Enabled {
		return "no"
	}
	if ts.Strict {
		return "yes (strict)"
	}
	return "yes"
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
