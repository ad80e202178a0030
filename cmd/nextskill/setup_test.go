package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupClaudeProjectInstall(t *testing.T) {
	isolateHome(t)
	project := t.TempDir()
	t.Chdir(project)

	out, err := runCommand(t, "setup", "claude", "--project", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", jsonErr, out)
	}
	if result["status"] != "installed" {
		t.Errorf("status = %v, want installed", result["status"])
	}
	if result["scope"] != "project" {
		t.Errorf("scope = %v, want project", result["scope"])
	}

	// Hook file written with the nextskill section
	hookPath := filepath.Join(project, ".claude", "hooks", "session_start.sh")
	data, readErr := os.ReadFile(hookPath)
	if readErr != nil {
		t.Fatalf("hook file not written: %v", readErr)
	}
	if !strings.Contains(string(data), "nextskill hook run session-start") {
		t.Error("hook missing session-start invocation")
	}

	// MCP server registered in project .mcp.json
	mcpData, readErr := os.ReadFile(filepath.Join(project, ".mcp.json"))
	if readErr != nil {
		t.Fatalf(".mcp.json not written: %v", readErr)
	}
	if !strings.Contains(string(mcpData), `"nextskill"`) {
		t.Error(".mcp.json missing nextskill entry")
	}
}

func TestSetupClaudeCheck(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "setup", "claude", "--check", "--project", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v", jsonErr)
	}
	if result["installed"] != false {
		t.Errorf("installed = %v, want false", result["installed"])
	}

	// Install, then check again
	if _, err := runCommand(t, "setup", "claude", "--project", "--json"); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	out, err = runCommand(t, "setup", "claude", "--check", "--project", "--json")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v", jsonErr)
	}
	if result["installed"] != true {
		t.Errorf("installed = %v after install, want true", result["installed"])
	}
}

func TestSetupClaudeRemove(t *testing.T) {
	isolateHome(t)
	project := t.TempDir()
	t.Chdir(project)

	if _, err := runCommand(t, "setup", "claude", "--project", "--json"); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	out, err := runCommand(t, "setup", "claude", "--remove", "--project", "--json")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v", jsonErr)
	}
	if result["status"] != "removed" {
		t.Errorf("status = %v, want removed", result["status"])
	}

	// Hook section gone
	hookData, _ := os.ReadFile(filepath.Join(project, ".claude", "hooks", "session_start.sh"))
	if strings.Contains(string(hookData), "nextskill") {
		t.Error("hook still contains nextskill section after remove")
	}
	// MCP entry gone
	mcpData, _ := os.ReadFile(filepath.Join(project, ".mcp.json"))
	if strings.Contains(string(mcpData), `"nextskill"`) {
		t.Error(".mcp.json still contains nextskill entry after remove")
	}
}

func TestSetupClaudeDryRun(t *testing.T) {
	isolateHome(t)
	project := t.TempDir()
	t.Chdir(project)

	out, err := runCommand(t, "setup", "claude", "--project", "--dry-run", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v", jsonErr)
	}
	if result["status"] != "dry_run" {
		t.Errorf("status = %v, want dry_run", result["status"])
	}

	// Nothing written
	if _, statErr := os.Stat(filepath.Join(project, ".claude")); !os.IsNotExist(statErr) {
		t.Error(".claude directory created during dry run")
	}
	if _, statErr := os.Stat(filepath.Join(project, ".mcp.json")); !os.IsNotExist(statErr) {
		t.Error(".mcp.json created during dry run")
	}
}

func TestSetupList(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "setup", "--list", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result struct {
		Integrations []struct {
			Name      string `json:"name"`
			Installed bool   `json:"installed"`
		} `json:"integrations"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", jsonErr, out)
	}
	if len(result.Integrations) == 0 {
		t.Fatal("no integrations listed")
	}
	if result.Integrations[0].Name != "claude" {
		t.Errorf("first integration = %q, want claude", result.Integrations[0].Name)
	}
}
