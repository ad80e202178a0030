// Package main provides the entry point for the nextskill CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/seaward/nextskill/internal/output"
	"github.com/seaward/nextskill/internal/skill"
)

// newSkillCmd creates the skill parent command.
func newSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Browse the Next.js skills corpus",
		Long: `Browse the curated Next.js skills corpus.

Skills are markdown documents with YAML frontmatter, organized in three
verbosity tiers:
  micro       Quick-reference cards, a screenful at most
  compact     Focused task guides
  reference   Full topic documentation

Built-in skills can be overridden by dropping a file with the same name
into .nextskill/skills/ (project) or the nextskill config dir (global).

Examples:
  nextskill skill list                 # List all skills
  nextskill skill list --tier micro    # List only micro skills
  nextskill skill show routing         # Print a skill's content`,
	}

	cmd.AddCommand(newSkillListCmd())
	cmd.AddCommand(newSkillShowCmd())
	return cmd
}

// newSkillListCmd creates the skill list subcommand.
func newSkillListCmd() *cobra.Command {
	var tierFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available skills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSkillList(cmd, tierFlag)
		},
	}
	cmd.Flags().StringVar(&tierFlag, "tier", "", "Filter by tier: micro, compact, or reference")
	return cmd
}

// runSkillList executes the skill list command.
func runSkillList(cmd *cobra.Command, tier string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if tier != "" && tier != skill.TierMicro && tier != skill.TierCompact && tier != skill.TierReference {
		err := output.NewUserError("--tier must be 'micro', 'compact', or 'reference'")
		printer.Error(err)
		return err
	}

	infos, err := skill.List(tier)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to list skills", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		skills := make([]map[string]any, 0, len(infos))
		for _, info := range infos {
			entry := map[string]any{
				"name":        info.Name,
				"description": info.Description,
				"tier":        info.Tier,
				"source":      info.Source,
			}
			if info.Overrides != "" {
				entry["overrides"] = info.Overrides
			}
			skills = append(skills, entry)
		}
		return printer.Success(map[string]any{
			"count":  len(skills),
			"skills": skills,
		})
	}

	printer.Section("Skills")
	headers := []string{"Name", "Tier", "Source", "Description"}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		source := info.Source
		if info.Overrides != "" {
			source += " (overrides " + info.Overrides + ")"
		}
		rows = append(rows, []string{info.Name, info.Tier, source, info.Description})
	}
	printer.Table(headers, rows)
	return nil
}

// newSkillShowCmd creates the skill show subcommand.
func newSkillShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a skill's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSkillShow(cmd, args[0])
		},
	}
}

// runSkillShow executes the skill show command.
func runSkillShow(cmd *cobra.Command, name string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	s, err := skill.Load(name)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"name":        s.Name,
			"description": s.Description,
			"tier":        s.Tier,
			"source":      s.Source,
			"content":     s.Content,
		})
	}

	printer.Print("%s", s.Content)
	return nil
}
