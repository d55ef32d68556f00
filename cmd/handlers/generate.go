package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ideaforge/internal/core"
)

// NewGenerateCmd creates the generate command for producing ideas from a
// profile on the command line.
func NewGenerateCmd() *cobra.Command {
	var (
		skills      []string
		interests   []string
		constraints []string
		values      []string
		experience  string
		timeCommit  string
		style       string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate SaaS ideas for a founder profile",
		Long: `Generate personalized SaaS business ideas.

Uses the Gemini API when GEMINI_API_KEY is configured, otherwise the
built-in synthesizer. Output is a JSON idea batch on stdout.

Examples:
  ideaforge generate \
    --skill "Backend Development" \
    --interest Healthcare --interest Finance \
    --value "Help Small Businesses" \
    --experience experienced --time parttime --style mvp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := core.Profile{
				Skills:         skills,
				Interests:      interests,
				Constraints:    constraints,
				Values:         values,
				Experience:     experience,
				TimeCommitment: timeCommit,
				BuildingStyle:  style,
			}
			return runGenerate(cmd, profile)
		},
	}

	cmd.Flags().StringArrayVar(&skills, "skill", nil, "Skill (repeatable)")
	cmd.Flags().StringArrayVar(&interests, "interest", nil, "Interest area (repeatable)")
	cmd.Flags().StringArrayVar(&constraints, "constraint", nil, "Constraint (repeatable)")
	cmd.Flags().StringArrayVar(&values, "value", nil, "Personal value (repeatable)")
	cmd.Flags().StringVar(&experience, "experience", core.ExperienceIntermediate, "Experience level (beginner|intermediate|experienced|expert)")
	cmd.Flags().StringVar(&timeCommit, "time", core.TimePartTime, "Time commitment (weekend|parttime|fulltime)")
	cmd.Flags().StringVar(&style, "style", core.StyleMVP, "Building style (mvp|polished|experimental)")

	return cmd
}

func runGenerate(cmd *cobra.Command, profile core.Profile) error {
	if len(profile.Interests) == 0 {
		return fmt.Errorf("at least one --interest is required")
	}

	svc, cleanup := newIdeaService(cmd.Context())
	defer cleanup()

	result := svc.Generate(cmd.Context(), profile)
	if result.Notice != "" {
		fmt.Fprintln(os.Stderr, result.Notice)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
