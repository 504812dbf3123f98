package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/quiz"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the quiz JSON schema sent to the provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := quiz.CheckSchema(); err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(quiz.QuizSchema.Definition)
	},
}
