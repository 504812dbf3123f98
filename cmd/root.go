package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "quizgen",
	Short:        "Generate multiple-choice quizzes with an LLM",
	Long:         "quizgen turns a natural-language prompt into a structured multiple-choice quiz and serves it over HTTP.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (yaml, json or toml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration using the --config flag when given and
// the QUIZGEN_* environment otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
