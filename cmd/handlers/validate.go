package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ideaforge/internal/core"
)

// NewValidateCmd creates the validate command for computing market-validation
// data for one idea.
func NewValidateCmd() *cobra.Command {
	var ideaFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Synthesize market-validation data for an idea",
		Long: `Compute the market-validation bundle for one idea: keyword search
trends, competitor landscape, demand signals, and the target-audience and
monetization insights.

The idea is read as JSON from --file, or from stdin when no file is given.
Keyword derivation kicks in when the idea carries no validation keywords.

Examples:
  ideaforge validate --file idea.json
  ideaforge generate --interest Healthcare | jq '.ideas[0]' | ideaforge validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, ideaFile)
		},
	}

	cmd.Flags().StringVar(&ideaFile, "file", "", "Path to a JSON idea (defaults to stdin)")

	return cmd
}

func runValidate(cmd *cobra.Command, ideaFile string) error {
	var reader io.Reader = cmd.InOrStdin()
	if ideaFile != "" {
		f, err := os.Open(ideaFile)
		if err != nil {
			return fmt.Errorf("failed to open idea file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var idea core.Idea
	if err := json.NewDecoder(reader).Decode(&idea); err != nil {
		return fmt.Errorf("failed to decode idea JSON: %w", err)
	}
	if idea.Title == "" {
		return fmt.Errorf("idea must have a title")
	}

	svc, cleanup := newIdeaService(cmd.Context())
	defer cleanup()

	data := svc.Validate(cmd.Context(), idea)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
