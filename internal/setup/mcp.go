package setup

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/seaward/nextskill/internal/output"
)

// MCPServerName is the key under which the server is registered.
const MCPServerName = "nextskill"

// ResolveMCPConfigPath determines the MCP registration file based on
// scope: the project-local .mcp.json that Claude Code reads, or the
// global one under ~/.claude.
func ResolveMCPConfigPath(project bool) (string, string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
		}
		return filepath.Join(cwd, ".mcp.json"), "project", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get home directory", err)
	}
	return filepath.Join(home, ".claude", "mcp.json"), "global", nil
}

// IsMCPRegistered checks whether the nextskill server appears in an MCP
// config file. Malformed files read as "not registered".
func IsMCPRegistered(configPath string) bool {
	servers := readMCPServers(configPath)
	_, ok := servers[MCPServerName]
	return ok
}

// RegisterMCPServer adds the nextskill server entry to an MCP config
// file, creating the file if needed and preserving other entries.
func RegisterMCPServer(configPath string) error {
	config := readMCPConfig(configPath)

	servers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		servers = map[string]any{}
		config["mcpServers"] = servers
	}
	servers[MCPServerName] = map[string]any{
		"command": "nextskill",
		"args":    []any{"serve"},
	}

	return writeMCPConfig(configPath, config)
}

// DeregisterMCPServer removes the nextskill server entry. A missing file
// or entry is a no-op.
func DeregisterMCPServer(configPath string) error {
	config := readMCPConfig(configPath)
	servers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		return nil
	}
	if _, ok := servers[MCPServerName]; !ok {
		return nil
	}
	delete(servers, MCPServerName)
	return writeMCPConfig(configPath, config)
}

// readMCPConfig loads an MCP config file as loose JSON. Missing or
// malformed files yield an empty config so registration can proceed.
func readMCPConfig(configPath string) map[string]any {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return map[string]any{}
	}
	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		return map[string]any{}
	}
	return config
}

// readMCPServers returns the mcpServers map from a config file.
func readMCPServers(configPath string) map[string]any {
	servers, _ := readMCPConfig(configPath)["mcpServers"].(map[string]any)
	return servers
}

// writeMCPConfig writes a config map back as indented JSON.
func writeMCPConfig(configPath string, config map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create config directory", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("failed to encode MCP config", err)
	}
	if err := os.WriteFile(configPath, append(data, '\n'), 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write MCP config", err)
	}
	return nil
}
