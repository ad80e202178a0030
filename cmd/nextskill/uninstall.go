// Package main provides the entry point for the nextskill CLI.
package main

import (
	"bufio"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/output"
	"github.com/seaward/nextskill/internal/setup"
)

func newUninstallCmd() *cobra.Command {
	var dryRun, force, removeBinary bool
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove nextskill integrations",
		Long: `Remove nextskill components: the Claude session hook and the MCP
server registration. Use --binary to also remove the binary itself.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUninstall(cmd, dryRun, force, removeBinary)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed")
	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&removeBinary, "binary", false, "Also remove the binary")
	return cmd
}

func runUninstall(cmd *cobra.Command, dryRun, force, removeBinary bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
	info, err := gatherUninstallInfo(removeBinary)
	if err != nil {
		printer.Error(err)
		return err
	}
	if dryRun {
		return outputDryRunUninstall(printer, info, removeBinary)
	}
	if !force && !printer.IsJSON() && !confirmUninstall(cmd, info, removeBinary) {
		printer.Println("Uninstall cancelled.")
		return nil
	}
	errs := doUninstall(info, removeBinary)
	return reportUninstallResult(printer, info, removeBinary, errs)
}

func gatherUninstallInfo(includeBinary bool) (*setup.UninstallInfo, error) {
	info := &setup.UninstallInfo{}
	if includeBinary {
		path, err := setup.GatherBinaryPath()
		if err != nil {
			return nil, err
		}
		info.BinaryPath = path
	}
	setup.GatherClaudeInfo(info)
	setup.GatherMCPInfo(info)
	return info, nil
}

func hasAnyComponents(info *setup.UninstallInfo, binary bool) bool {
	return info.ClaudeInstalled || info.MCPRegistered || binary
}

func outputDryRunUninstall(printer *output.Printer, info *setup.UninstallInfo, binary bool) error {
	if printer.IsJSON() {
		data := map[string]any{
			"status":         "dry_run",
			"hook_installed": info.ClaudeInstalled,
			"mcp_registered": info.MCPRegistered,
		}
		if info.ClaudeInstalled {
			data["hook_scope"], data["hook_location"] = info.ClaudeScope, info.ClaudeHookPath
		}
		if info.MCPRegistered {
			data["mcp_scope"], data["mcp_location"] = info.MCPScope, info.MCPConfigPath
		}
		if binary {
			data["binary_path"] = info.BinaryPath
		}
		return printer.Success(data)
	}

	styles := uninstallStyles(printer.IsTTY())
	printer.Println(styles.warning.Render("Dry run: Would perform the following actions:"))
	printer.Println()
	printComponents(printer, styles, info, binary, "  ")
	if !hasAnyComponents(info, binary) {
		printer.Println(styles.dim.Render("  (No nextskill components found)"))
	}
	return nil
}

func printComponents(printer *output.Printer, styles uninstallStyleSet, info *setup.UninstallInfo, binary bool, indent string) {
	if info.ClaudeInstalled {
		printer.Println(styles.bullet.Render(indent+"• ") + "Session hook (" + info.ClaudeScope + "): " + info.ClaudeHookPath)
	}
	if info.MCPRegistered {
		printer.Println(styles.bullet.Render(indent+"• ") + "MCP registration (" + info.MCPScope + "): " + info.MCPConfigPath)
	}
	if binary {
		printer.Println(styles.bullet.Render(indent+"• ") + "Binary: " + info.BinaryPath)
	}
}

func confirmUninstall(cmd *cobra.Command, info *setup.UninstallInfo, binary bool) bool {
	printer := output.NewPrinter(cmd.OutOrStdout(), false, useColor(cmd))
	styles := uninstallStyles(printer.IsTTY())
	printer.Println(styles.warning.Render("Removing nextskill..."))
	printer.Println()
	printer.Println("  Components found:")
	if !hasAnyComponents(info, binary) {
		printer.Println(styles.dim.Render("    (No components found)"))
		return false
	}
	printComponents(printer, styles, info, binary, "    ")
	printer.Println()
	printer.Print("%s", "  ? Remove all components? [y/N] ")
	reader := bufio.NewReader(cmd.InOrStdin())
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func doUninstall(info *setup.UninstallInfo, binary bool) []string {
	var errs []string
	if info.ClaudeInstalled {
		if err := setup.RemoveClaudeIntegration(info.ClaudeHookPath); err != nil {
			errs = append(errs, "hook: "+err.Error())
		} else {
			info.ClaudeRemoved = true
		}
	}
	if info.MCPRegistered {
		if err := setup.DeregisterMCPServer(info.MCPConfigPath); err != nil {
			errs = append(errs, "mcp: "+err.Error())
		} else {
			info.MCPRemoved = true
		}
	}
	if binary {
		if err := setup.RemoveBinary(info.BinaryPath); err != nil {
			errs = append(errs, "binary: "+err.Error())
		} else {
			info.BinaryRemoved = true
		}
	}
	return errs
}

func reportUninstallResult(printer *output.Printer, info *setup.UninstallInfo, binary bool, errs []string) error {
	if printer.IsJSON() {
		status := "ok"
		if len(errs) > 0 {
			status = "partial"
		}
		data := map[string]any{
			"status":       status,
			"hook_removed": info.ClaudeRemoved,
			"mcp_removed":  info.MCPRemoved,
		}
		if info.ClaudeRemoved {
			data["hook_scope"] = info.ClaudeScope
		}
		if len(errs) > 0 {
			data["errors"], data["recovery_hint"] = errs, "Check permissions and try again."
		}
		if binary {
			data["binary_removed"] = info.BinaryRemoved
		}
		return printer.Success(data)
	}

	styles := uninstallStyles(printer.IsTTY())
	printer.Println()
	if info.ClaudeRemoved {
		printer.Println(styles.success.Render("  ✓ ") + "Session hook removed")
	}
	if info.MCPRemoved {
		printer.Println(styles.success.Render("  ✓ ") + "MCP registration removed")
	}
	if binary && info.BinaryRemoved {
		printer.Println(styles.success.Render("  ✓ ") + "Binary removed")
	}
	printer.Println()
	if len(errs) > 0 {
		printer.Println(styles.warning.Render("Completed with errors: " + strings.Join(errs, "; ")))
		return nil
	}
	printer.Println(styles.dim.Render("  Nextskill removed. Your projects are unchanged."))
	return nil
}

type uninstallStyleSet struct{ warning, success, dim, bullet lipgloss.Style }

func uninstallStyles(isTTY bool) uninstallStyleSet {
	if !isTTY {
		return uninstallStyleSet{}
	}
	return uninstallStyleSet{
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		bullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}
