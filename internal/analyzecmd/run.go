package analyzecmd

import (
	"fmt"
	"log/slog"

	"github.com/bookdata-labs/reviewpulse/internal/bestbooks"
	"github.com/bookdata-labs/reviewpulse/internal/config"
	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/bookdata-labs/reviewpulse/internal/export"
	"github.com/bookdata-labs/reviewpulse/internal/sentiment"
	"github.com/spf13/cobra"
)

// unmatchedSampleSize limits how many unmatched titles are logged per run.
const unmatchedSampleSize = 5

// NewRunCmd creates the run command for the full analysis pipeline.
func NewRunCmd() *cobra.Command {
	var dataDir string
	var outputDir string
	var optionsPath string
	var snapshotPath string
	var format string
	var topN int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full load, clean, score and rank pipeline",
		Long: `Run the complete analysis over one snapshot of the input data.

The pipeline joins books_data with books_rating on title, cleans the joined
rows, scores every review with the VADER analyzer, aggregates per book and
writes the three top-N reports to the output directory.`,
		Example: `  # Run with paths from .env (DATA_PATH / OUTPUT_PATH)
  reviewpulse analyze run

  # Run with explicit paths and CSV reports
  reviewpulse analyze run --data ./data --output ./reports --format csv

  # Keep a parquet snapshot of the cleaned, scored table
  reviewpulse analyze run --snapshot ./reports/clean_reviews.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			cfg := config.FromEnv(dataDir, outputDir)
			if optionsPath != "" {
				opts, err := config.LoadOptions(optionsPath)
				if err != nil {
					return err
				}
				cfg.Options = opts
			}
			if format != "" {
				cfg.Options.Format = format
			}
			if topN > 0 {
				cfg.Options.TopN = topN
			}

			if cfg.DataPath == "" {
				return fmt.Errorf("data directory not set: pass --data or set DATA_PATH")
			}
			if cfg.OutputPath == "" {
				return fmt.Errorf("output directory not set: pass --output or set OUTPUT_PATH")
			}

			return executeRun(cfg, snapshotPath)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Directory containing books_data and books_rating (default: DATA_PATH)")
	cmd.Flags().StringVar(&outputDir, "output", "", "Directory for report files (default: OUTPUT_PATH)")
	cmd.Flags().StringVar(&optionsPath, "options", "", "Path to a YAML options file")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Write a parquet snapshot of the cleaned scored table")
	cmd.Flags().StringVar(&format, "format", "", "Report format: xlsx or csv (default xlsx)")
	cmd.Flags().IntVar(&topN, "top", 0, "Rows per ranked report (default 10)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	return cmd
}

func executeRun(cfg config.Config, snapshotPath string) error {
	slog.Info("Starting analysis run", "data", cfg.DataPath, "output", cfg.OutputPath)

	loader := dataset.NewLoader(cfg.DataPath)
	books, reviews, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load sources: %w", err)
	}
	slog.Info("Sources loaded", "books", len(books), "reviews", len(reviews))

	cleaned, unmatched := dataset.Process(books, reviews)
	reportUnmatched(unmatched)

	if len(cleaned) == 0 {
		// Nothing survived cleaning; terminate gracefully without scoring.
		fmt.Println("No clean review records were produced. Check the input data.")
		return nil
	}
	slog.Info("Reviews cleaned", "records", len(cleaned))

	slog.Info("Scoring review sentiment...")
	analyzer := sentiment.NewAnalyzer()
	records := analyzer.Score(sentiment.Preprocess(cleaned))

	slog.Info("Aggregating per book...")
	aggs := bestbooks.AggregateReviews(records)
	slog.Info("Books aggregated", "books", len(aggs))

	exporter := bestbooks.NewExporter(cfg.OutputPath, cfg.Options.Format)
	n := cfg.Options.TopN

	exports := []struct {
		name string
		fn   func() (string, error)
	}{
		{"review count", func() (string, error) {
			return exporter.ExportReviewCount(bestbooks.TopByReviewCount(aggs, n))
		}},
		{"average rating", func() (string, error) {
			return exporter.ExportAverageRating(bestbooks.TopByAverageRating(aggs, n))
		}},
		{"sentiment", func() (string, error) {
			return exporter.ExportSentiment(bestbooks.TopBySentiment(aggs, n))
		}},
	}

	// A failed export must not stop the remaining ones.
	failures := 0
	for _, e := range exports {
		path, err := e.fn()
		if err != nil {
			failures++
			slog.Error("Export failed", "report", e.name, "error", err)
			continue
		}
		slog.Info("Report exported", "report", e.name, "path", path)
	}

	if snapshotPath != "" {
		if err := export.WriteSnapshot(snapshotPath, records); err != nil {
			slog.Error("Snapshot failed", "path", snapshotPath, "error", err)
		} else {
			slog.Info("Snapshot written", "path", snapshotPath, "records", len(records))
		}
	}

	printSummary(records, cfg.Options)

	if failures > 0 {
		return fmt.Errorf("%d of %d report exports failed", failures, len(exports))
	}
	return nil
}

func reportUnmatched(unmatched []dataset.Unmatched) {
	if len(unmatched) == 0 {
		return
	}

	slog.Warn("Reviews without a matching book", "count", len(unmatched))
	for i, r := range unmatched {
		if i == unmatchedSampleSize {
			slog.Warn("More unmatched reviews omitted", "omitted", len(unmatched)-unmatchedSampleSize)
			break
		}
		slog.Warn("Unmatched review", "title", r.Title, "score", r.Score)
	}
}
