// Package skill loads the Next.js skill corpus: markdown documents with
// YAML frontmatter describing one feature area each at a detail tier
// (micro, compact, or reference). Built-in skills are embedded; projects
// and users can override individual skills by name.
package skill

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seaward/nextskill/internal/config"
)

// Tier values, from terse to exhaustive.
const (
	TierMicro     = "micro"
	TierCompact   = "compact"
	TierReference = "reference"
)

// Skill is one corpus document with metadata and content.
type Skill struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Tier        string `yaml:"tier"`
	Area        string `yaml:"area,omitempty"`

	// Markdown body after the frontmatter
	Content string `yaml:"-"`

	// Source location for display
	Source string `yaml:"-"`
}

// Info provides skill metadata for listing.
type Info struct {
	Name        string
	Description string
	Tier        string
	Source      string // "built-in", "global", or "project"
	Overrides   string // empty or the source this entry shadows
}

// Load finds and loads a skill by name.
// Resolution order: project-local → user global → built-in.
func Load(name string) (*Skill, error) {
	if s, err := loadFromPath(projectSkillsDir(), name); err == nil {
		s.Source = "project"
		return s, nil
	}

	if s, err := loadFromPath(globalSkillsDir(), name); err == nil {
		s.Source = "global"
		return s, nil
	}

	if s, err := loadBuiltin(name); err == nil {
		s.Source = "built-in"
		return s, nil
	}

	return nil, fmt.Errorf("skill %q not found", name)
}

// List returns all available skills, overrides first, optionally
// filtered by tier (empty tier means all).
func List(tier string) ([]Info, error) {
	seen := make(map[string]string) // name -> first source
	var skills []Info

	sources := []struct {
		name string
		dir  string
	}{
		{"project", projectSkillsDir()},
		{"global", globalSkillsDir()},
	}

	for _, src := range sources {
		infos, err := listFromPath(src.dir, src.name)
		if err != nil {
			continue // directory might not exist
		}
		for _, info := range infos {
			if _, exists := seen[info.Name]; !exists {
				seen[info.Name] = src.name
				skills = append(skills, info)
			}
		}
	}

	// Add built-ins, marking entries that shadow one
	for _, info := range listBuiltins() {
		if _, exists := seen[info.Name]; exists {
			for i := range skills {
				if skills[i].Name == info.Name {
					skills[i].Overrides = "built-in"
				}
			}
			continue
		}
		skills = append(skills, info)
	}

	if tier != "" {
		skills = filterTier(skills, tier)
	}
	return skills, nil
}

// filterTier keeps only skills at the given tier.
func filterTier(skills []Info, tier string) []Info {
	var out []Info
	for _, s := range skills {
		if s.Tier == tier {
			out = append(out, s)
		}
	}
	return out
}

// projectSkillsDir returns the project-local skills directory.
func projectSkillsDir() string {
	return filepath.Join(".nextskill", "skills")
}

// globalSkillsDir returns the user's global skills directory.
func globalSkillsDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "skills")
}

// loadFromPath attempts to load a skill from a directory.
func loadFromPath(dir, name string) (*Skill, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill %s: %w", path, err)
	}

	return parseSkill(string(data))
}

// listFromPath lists skills in a directory.
func listFromPath(dir, source string) ([]Info, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var skills []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		s, err := parseSkill(string(data))
		if err != nil {
			continue
		}

		skills = append(skills, Info{
			Name:        name,
			Description: s.Description,
			Tier:        s.Tier,
			Source:      source,
		})
	}

	return skills, nil
}

// parseSkill parses a skill from raw content with YAML frontmatter.
func parseSkill(raw string) (*Skill, error) {
	frontmatter, content := splitFrontmatter(raw)

	var s Skill
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &s); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}
	if s.Tier == "" {
		s.Tier = TierReference
	}

	s.Content = strings.TrimSpace(content)
	return &s, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:] // skip opening ---
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
