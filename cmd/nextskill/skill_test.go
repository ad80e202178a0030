package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSkillListCommand(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "skill", "list", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result struct {
		Count  int `json:"count"`
		Skills []struct {
			Name   string `json:"name"`
			Tier   string `json:"tier"`
			Source string `json:"source"`
		} `json:"skills"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", jsonErr, out)
	}
	if result.Count == 0 {
		t.Fatal("no skills listed")
	}

	names := make(map[string]bool)
	for _, s := range result.Skills {
		names[s.Name] = true
		if s.Source != "built-in" {
			t.Errorf("skill %q source = %q, want built-in", s.Name, s.Source)
		}
	}
	for _, want := range []string{"routing", "quickref", "testing", "styling"} {
		if !names[want] {
			t.Errorf("skill %q missing from list", want)
		}
	}
}

func TestSkillListTierFilter(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "skill", "list", "--tier", "micro", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result struct {
		Skills []struct {
			Tier string `json:"tier"`
		} `json:"skills"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v", jsonErr)
	}
	if len(result.Skills) == 0 {
		t.Fatal("no micro skills listed")
	}
	for _, s := range result.Skills {
		if s.Tier != "micro" {
			t.Errorf("tier = %q, want micro", s.Tier)
		}
	}
}

func TestSkillListInvalidTier(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	_, err := runCommand(t, "skill", "list", "--tier", "huge")
	if err == nil {
		t.Fatal("expected error for invalid tier")
	}
}

func TestSkillShowCommand(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "skill", "show", "routing")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "App Router") {
		t.Errorf("routing skill content missing expected text:\n%s", out)
	}
}

func TestSkillShowUnknown(t *testing.T) {
	isolateHome(t)
	t.Chdir(t.TempDir())

	out, err := runCommand(t, "skill", "show", "no-such-skill", "--json")
	if err == nil {
		t.Fatal("expected error for unknown skill")
	}

	var result map[string]any
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON error output: %v\nOutput: %s", jsonErr, out)
	}
	code, ok := result["code"].(float64)
	if !ok || code != 1 {
		t.Errorf("error code = %v, want 1 (user error)", result["code"])
	}
}
