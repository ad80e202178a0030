package skill

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed content/*.md
var builtinFS embed.FS

// loadBuiltin loads a built-in skill by name.
func loadBuiltin(name string) (*Skill, error) {
	path := "content/" + name + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin skill %s: %w", path, err)
	}
	return parseSkill(string(data))
}

// listBuiltins returns info for all built-in skills.
func listBuiltins() []Info {
	dirEntries, err := builtinFS.ReadDir("content")
	if err != nil {
		return nil
	}

	var skills []Info
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		data, err := builtinFS.ReadFile("content/" + entry.Name())
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
			Source:      "built-in",
		})
	}

	return skills
}
