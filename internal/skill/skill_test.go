package skill

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	t.Chdir(t.TempDir()) // no project overrides in play
	t.Setenv("NEXTSKILL_CONFIG_HOME", t.TempDir())

	s, err := Load("routing")
	if err != nil {
		t.Fatalf("Load(routing): %v", err)
	}
	if s.Source != "built-in" {
		t.Errorf("source = %q, want built-in", s.Source)
	}
	if s.Tier != TierReference {
		t.Errorf("tier = %q, want reference", s.Tier)
	}
	if s.Description == "" || s.Content == "" {
		t.Error("expected description and content")
	}
	if strings.Contains(s.Content, "---\nname:") {
		t.Error("frontmatter leaked into content")
	}
}

func TestLoadUnknownSkill(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NEXTSKILL_CONFIG_HOME", t.TempDir())

	if _, err := Load("no-such-skill"); err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestListBuiltins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NEXTSKILL_CONFIG_HOME", t.TempDir())

	all, err := List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) < 5 {
		t.Fatalf("expected the full builtin corpus, got %d skills", len(all))
	}

	byName := make(map[string]Info)
	for _, s := range all {
		byName[s.Name] = s
	}
	for _, want := range []string{"routing", "data-and-caching", "server-actions", "testing", "styling", "quickref"} {
		if _, ok := byName[want]; !ok {
			t.Errorf("builtin %q missing from list", want)
		}
	}

	micro, err := List(TierMicro)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range micro {
		if s.Tier != TierMicro {
			t.Errorf("tier filter leaked %q (%s)", s.Name, s.Tier)
		}
	}
	if len(micro) == 0 || len(micro) >= len(all) {
		t.Errorf("micro filter returned %d of %d", len(micro), len(all))
	}
}

func TestProjectOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NEXTSKILL_CONFIG_HOME", t.TempDir())

	skillsDir := filepath.Join(dir, ".nextskill", "skills")
	if err := os.MkdirAll(skillsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	override := `---
name: routing
description: team routing conventions
tier: compact
---

Use our wrapper around next/link.`
	if err := os.WriteFile(filepath.Join(skillsDir, "routing.md"), []byte(override), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load("routing")
	if err != nil {
		t.Fatal(err)
	}
	if s.Source != "project" {
		t.Errorf("source = %q, want project", s.Source)
	}
	if s.Description != "team routing conventions" {
		t.Errorf("description = %q", s.Description)
	}

	all, err := List("")
	if err != nil {
		t.Fatal(err)
	}
	for _, info := range all {
		if info.Name == "routing" {
			if info.Source != "project" || info.Overrides != "built-in" {
				t.Errorf("routing listed as %+v", info)
			}
		}
	}
}

func TestParseSkill(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Skill
		wantErr bool
	}{
		{
			"full frontmatter",
			"---\nname: x\ndescription: d\ntier: micro\n---\n\nbody",
			Skill{Name: "x", Description: "d", Tier: "micro", Content: "body"},
			false,
		},
		{
			"no frontmatter defaults tier",
			"just content",
			Skill{Tier: TierReference, Content: "just content"},
			false,
		},
		{
			"invalid yaml",
			"---\nname: [unclosed\n---\nbody",
			Skill{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSkill(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if *got != tt.want {
				t.Errorf("parseSkill = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
