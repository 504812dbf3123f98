package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/llm"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt...>",
	Short: "Generate a quiz once and print it as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		q, err := a.gen.Generate(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if llm.IsAPIError(err) {
				return fmt.Errorf("API error: %w", err)
			}
			return fmt.Errorf("failed to generate quiz: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	},
}
