package analyzecmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bookdata-labs/reviewpulse/internal/config"
	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/bookdata-labs/reviewpulse/internal/sentiment"
	"github.com/spf13/cobra"
)

// NewLookupCmd creates the lookup command for single book or category
// sentiment queries.
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up the average sentiment of one book or category",
	}

	cmd.AddCommand(newLookupSubCmd("book", "Look up a book by exact title", sentiment.BookSentiment))
	cmd.AddCommand(newLookupSubCmd("category", "Look up a category (comma-joined fields are exploded)", sentiment.CategorySentiment))

	return cmd
}

func newLookupSubCmd(kind, short string, query func([]dataset.Review, string) (float64, sentiment.Label, error)) *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   kind + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Example: fmt.Sprintf(`  reviewpulse analyze lookup %s "Some Name"
  reviewpulse analyze lookup %s "Some Name" --data ./data`, kind, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv(dataDir, "")
			if cfg.DataPath == "" {
				return fmt.Errorf("data directory not set: pass --data or set DATA_PATH")
			}
			return executeLookup(cfg, kind, args[0], query)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Directory containing books_data and books_rating (default: DATA_PATH)")

	return cmd
}

func executeLookup(cfg config.Config, kind, key string, query func([]dataset.Review, string) (float64, sentiment.Label, error)) error {
	loader := dataset.NewLoader(cfg.DataPath)
	books, reviews, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}

	cleaned, unmatched := dataset.Process(books, reviews)
	if len(unmatched) > 0 {
		slog.Debug("Reviews without a matching book", "count", len(unmatched))
	}
	if len(cleaned) == 0 {
		fmt.Println("No clean review records were produced. Check the input data.")
		return nil
	}

	analyzer := sentiment.NewAnalyzer()
	records := analyzer.Score(sentiment.Preprocess(cleaned))

	avg, label, err := query(records, key)
	if errors.Is(err, sentiment.ErrNotFound) {
		// A missed lookup is an answer, not a failure.
		fmt.Printf("No reviews found for %s %q.\n", kind, key)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Average sentiment for %s %q: %s (%.2f)\n", kind, key, label, avg)
	return nil
}
