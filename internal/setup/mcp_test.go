package setup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRegisterMCPServerFreshFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")

	if err := RegisterMCPServer(configPath); err != nil {
		t.Fatalf("RegisterMCPServer: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("config is not valid JSON: %v", err)
	}

	servers, ok := config["mcpServers"].(map[string]any)
	if !ok {
		t.Fatal("mcpServers missing")
	}
	entry, ok := servers[MCPServerName].(map[string]any)
	if !ok {
		t.Fatal("nextskill entry missing")
	}
	if entry["command"] != "nextskill" {
		t.Errorf("command = %v", entry["command"])
	}
}

func TestRegisterMCPServerPreservesOtherEntries(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")
	existing := `{
  "mcpServers": {
    "other-tool": {"command": "other-tool", "args": ["mcp"]}
  },
  "unrelated": true
}`
	if err := os.WriteFile(configPath, []byte(existing), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := RegisterMCPServer(configPath); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(configPath)
	var config map[string]any
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatal(err)
	}

	if config["unrelated"] != true {
		t.Error("top-level key dropped")
	}
	servers := config["mcpServers"].(map[string]any)
	if _, ok := servers["other-tool"]; !ok {
		t.Error("existing server entry dropped")
	}
	if _, ok := servers[MCPServerName]; !ok {
		t.Error("nextskill entry not added")
	}
}

func TestDeregisterMCPServer(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")
	if err := RegisterMCPServer(configPath); err != nil {
		t.Fatal(err)
	}

	if err := DeregisterMCPServer(configPath); err != nil {
		t.Fatal(err)
	}
	if IsMCPRegistered(configPath) {
		t.Error("still registered after deregister")
	}
}

func TestDeregisterMCPServerMissingFile(t *testing.T) {
	if err := DeregisterMCPServer(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestIsMCPRegistered(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"missing file", "", false},
		{"malformed json", `{not json`, false},
		{"empty config", `{}`, false},
		{"other servers only", `{"mcpServers": {"foo": {}}}`, false},
		{"registered", `{"mcpServers": {"nextskill": {"command": "nextskill"}}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), ".mcp.json")
			if tt.content != "" {
				if err := os.WriteFile(configPath, []byte(tt.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			if got := IsMCPRegistered(configPath); got != tt.want {
				t.Errorf("IsMCPRegistered = %v, want %v", got, tt.want)
			}
		})
	}
}
