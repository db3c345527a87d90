package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviewpulse",
		Short: "Book review sentiment analysis and ranking tool",
		Long: `Reviewpulse joins a book catalog with its review feed, scores every review
with a lexicon-based sentiment analyzer, and exports ranked top-N reports
(most reviewed, best rated, most positively reviewed).

It processes one static snapshot of the input data per run.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newAnalyzeCmd())

	return cmd
}
