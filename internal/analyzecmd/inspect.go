package analyzecmd

import (
	"fmt"

	"github.com/bookdata-labs/reviewpulse/internal/config"
	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/bookdata-labs/reviewpulse/internal/export"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command for examining the joined dataset
// or a previously written snapshot.
func NewInspectCmd() *cobra.Command {
	var dataDir string
	var snapshotPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the cleaned dataset (useful for checking the join and parsing)",
		Long: `Inspect the joined, cleaned review records, or a parquet snapshot from a
previous run. Prints record counts and a sample of rows so parsing and join
behavior can be checked before a full run.`,
		Example: `  # Join the raw sources and show 5 cleaned rows
  reviewpulse analyze inspect --data ./data --limit 5

  # Inspect a snapshot (includes sentiment scores)
  reviewpulse analyze inspect --snapshot ./reports/clean_reviews.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshotPath != "" {
				return inspectSnapshot(snapshotPath, limit)
			}

			cfg := config.FromEnv(dataDir, "")
			if cfg.DataPath == "" {
				return fmt.Errorf("data directory not set: pass --data or set DATA_PATH")
			}
			return inspectSources(cfg, limit)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Directory containing books_data and books_rating (default: DATA_PATH)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Path to a parquet snapshot to inspect instead of the raw sources")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to print (0 for none)")

	return cmd
}

func inspectSources(cfg config.Config, limit int) error {
	loader := dataset.NewLoader(cfg.DataPath)
	books, reviews, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	cleaned, unmatched := dataset.Process(books, reviews)

	fmt.Printf("Books: %d\n", len(books))
	fmt.Printf("Reviews: %d\n", len(reviews))
	fmt.Printf("Cleaned: %d\n", len(cleaned))
	fmt.Printf("Unmatched: %d\n", len(unmatched))

	printRecords(cleaned, limit)
	return nil
}

func inspectSnapshot(path string, limit int) error {
	records, err := export.ReadSnapshot(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	fmt.Printf("Snapshot records: %d\n", len(records))
	printRecords(records, limit)
	return nil
}

func printRecords(records []dataset.Review, limit int) {
	for i, r := range records {
		if i == limit {
			break
		}
		fmt.Printf("\n[%d] %s\n", i+1, r.Title)
		fmt.Printf("  Authors: %s\n", r.Authors)
		fmt.Printf("  Categories: %s\n", r.Categories)
		fmt.Printf("  Ratings Count: %d\n", r.RatingsCount)
		fmt.Printf("  Score: %.1f\n", r.Score)
		fmt.Printf("  Text: %s\n", truncate(r.Text, 120))
		if r.Sentiment != "" {
			fmt.Printf("  Sentiment: %s (%.4f)\n", r.Sentiment, r.Compound)
		}
	}
}
