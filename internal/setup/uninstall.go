package setup

import (
	"os"

	"github.com/seaward/nextskill/internal/output"
)

// UninstallInfo holds the state gathered before an uninstall operation.
// Each field captures whether a component is present and its location.
type UninstallInfo struct {
	BinaryPath      string
	ClaudeScope     string
	ClaudeHookPath  string
	MCPScope        string
	MCPConfigPath   string
	ClaudeInstalled bool
	MCPRegistered   bool
	ClaudeRemoved   bool
	MCPRemoved      bool
	BinaryRemoved   bool
}

// GatherBinaryPath resolves the current executable path.
func GatherBinaryPath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to determine binary location", err)
	}
	return execPath, nil
}

// GatherClaudeInfo detects the session hook in project or global scope.
func GatherClaudeInfo(info *UninstallInfo) {
	if status := CheckHookStatus(); status.Installed {
		info.ClaudeInstalled = true
		info.ClaudeScope = status.Scope
		info.ClaudeHookPath = status.Path
	}
}

// GatherMCPInfo detects the MCP registration in project or global scope.
func GatherMCPInfo(info *UninstallInfo) {
	for _, project := range []bool{true, false} {
		path, scope, err := ResolveMCPConfigPath(project)
		if err != nil {
			continue
		}
		if IsMCPRegistered(path) {
			info.MCPRegistered = true
			info.MCPScope = scope
			info.MCPConfigPath = path
			return
		}
	}
}

// RemoveClaudeIntegration removes the nextskill section from a hook file.
func RemoveClaudeIntegration(hookPath string) error {
	return RemoveSectionFromHook(hookPath)
}

// RemoveBinary removes the nextskill binary at the given path.
func RemoveBinary(path string) error {
	if err := os.Remove(path); err != nil {
		return output.NewSystemErrorWithCause("failed to remove binary", err)
	}
	return nil
}
