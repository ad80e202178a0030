package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seaward/nextskill/internal/detect"
	"github.com/seaward/nextskill/internal/skill"
)

// DetectInput is the input for the detect tool.
type DetectInput struct {
	Root string `json:"root,omitempty" jsonschema:"directory to scan (defaults to the current working directory)"`
}

// DetectOutput is the output for the detect tool.
type DetectOutput struct {
	Found    bool            `json:"found"             jsonschema:"whether a Next.js app was detected"`
	AppCount int             `json:"appCount"          jsonschema:"number of Next.js apps found under root"`
	Context  *detect.Context `json:"context,omitempty" jsonschema:"detection context for the active app"`
}

func handleDetect() mcp.ToolHandlerFor[DetectInput, DetectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, DetectOutput, error) {
		root := input.Root
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, DetectOutput{}, fmt.Errorf("resolving working directory: %w", err)
			}
			root = cwd
		}

		ctx, count := detect.Detect(root, root)
		if ctx == nil {
			return nil, DetectOutput{}, nil
		}
		return nil, DetectOutput{Found: true, AppCount: count, Context: ctx}, nil
	}
}

// SkillListInput is the input for the skill_list tool.
type SkillListInput struct {
	Tier string `json:"tier,omitempty" jsonschema:"filter by tier: micro, compact, or reference"`
}

// SkillListEntry is one skill in the skill_list output.
type SkillListEntry struct {
	Name        string `json:"name"                jsonschema:"skill name, usable with skill_show"`
	Description string `json:"description"         jsonschema:"one-line summary"`
	Tier        string `json:"tier"                jsonschema:"verbosity tier: micro, compact, or reference"`
	Source      string `json:"source"              jsonschema:"where the skill comes from: built-in, global, or project"`
	Overrides   string `json:"overrides,omitempty" jsonschema:"source this skill shadows, if any"`
}

// SkillListOutput is the output for the skill_list tool.
type SkillListOutput struct {
	Count  int              `json:"count"  jsonschema:"number of skills returned"`
	Skills []SkillListEntry `json:"skills" jsonschema:"available skills"`
}

func handleSkillList() mcp.ToolHandlerFor[SkillListInput, SkillListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SkillListInput) (*mcp.CallToolResult, SkillListOutput, error) {
		if input.Tier != "" && !validTier(input.Tier) {
			return nil, SkillListOutput{}, fmt.Errorf("unknown tier %q: expected micro, compact, or reference", input.Tier)
		}

		infos, err := skill.List(input.Tier)
		if err != nil {
			return nil, SkillListOutput{}, fmt.Errorf("listing skills: %w", err)
		}

		entries := make([]SkillListEntry, 0, len(infos))
		for _, info := range infos {
			entries = append(entries, SkillListEntry{
				Name:        info.Name,
				Description: info.Description,
				Tier:        info.Tier,
				Source:      info.Source,
				Overrides:   info.Overrides,
			})
		}
		return nil, SkillListOutput{Count: len(entries), Skills: entries}, nil
	}
}

// SkillShowInput is the input for the skill_show tool.
type SkillShowInput struct {
	Name string `json:"name" jsonschema:"skill name as returned by skill_list"`
}

// SkillShowOutput is the output for the skill_show tool.
type SkillShowOutput struct {
	Name        string `json:"name"        jsonschema:"skill name"`
	Description string `json:"description" jsonschema:"one-line summary"`
	Tier        string `json:"tier"        jsonschema:"verbosity tier"`
	Source      string `json:"source"      jsonschema:"where the skill was loaded from"`
	Content     string `json:"content"     jsonschema:"full markdown content"`
}

func handleSkillShow() mcp.ToolHandlerFor[SkillShowInput, SkillShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SkillShowInput) (*mcp.CallToolResult, SkillShowOutput, error) {
		if input.Name == "" {
			return nil, SkillShowOutput{}, errors.New("skill name is required")
		}

		s, err := skill.Load(input.Name)
		if err != nil {
			return nil, SkillShowOutput{}, err
		}
		return nil, SkillShowOutput{
			Name:        s.Name,
			Description: s.Description,
			Tier:        s.Tier,
			Source:      s.Source,
			Content:     s.Content,
		}, nil
	}
}

// validTier reports whether tier is one of the known tiers.
func validTier(tier string) bool {
	switch tier {
	case skill.TierMicro, skill.TierCompact, skill.TierReference:
		return true
	}
	return false
}
