package cmd

import (
	"github.com/bookdata-labs/reviewpulse/internal/analyzecmd"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Review analysis pipeline commands",
		Long: `Commands for running the review analysis pipeline and querying its results.

Supports running the full load/clean/score/rank pipeline, looking up the average
sentiment of a single book or category, and inspecting the joined dataset.`,
	}

	// Add analyze subcommands
	cmd.AddCommand(analyzecmd.NewRunCmd())
	cmd.AddCommand(analyzecmd.NewLookupCmd())
	cmd.AddCommand(analyzecmd.NewInspectCmd())

	return cmd
}
