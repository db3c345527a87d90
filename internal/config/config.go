package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the two external paths the pipeline needs plus report options.
// It is built once at command startup and passed into constructors explicitly;
// nothing below the command layer reads the environment.
type Config struct {
	// DataPath is the directory containing books_data and books_rating.
	DataPath string
	// OutputPath is the directory the top-N report files are written to.
	OutputPath string

	Options Options
}

// Options tunes report generation. Zero values are replaced by defaults.
type Options struct {
	// TopN is the number of rows per ranked report.
	TopN int `yaml:"top_n"`
	// MinRatingsCount filters the best-rated ranking in the run summary to
	// books with at least this many catalog ratings.
	MinRatingsCount int `yaml:"min_ratings_count"`
	// Format selects the report file format: "xlsx" or "csv".
	Format string `yaml:"format"`
}

// DefaultOptions returns the options used when no options file is given.
func DefaultOptions() Options {
	return Options{
		TopN:            10,
		MinRatingsCount: 3000,
		Format:          "xlsx",
	}
}

// LoadOptions reads an options YAML file and fills unset fields with defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file: %w", err)
	}

	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if opts.Format == "" {
		opts.Format = "xlsx"
	}
	if opts.Format != "xlsx" && opts.Format != "csv" {
		return opts, fmt.Errorf("unsupported report format: %s", opts.Format)
	}

	return opts, nil
}

// FromEnv resolves the data and output directories from DATA_PATH and
// OUTPUT_PATH. Flag values take precedence over the environment; an empty
// result for a required path is reported by the operation that needs it.
func FromEnv(dataFlag, outputFlag string) Config {
	cfg := Config{
		DataPath:   dataFlag,
		OutputPath: outputFlag,
		Options:    DefaultOptions(),
	}

	if cfg.DataPath == "" {
		cfg.DataPath = os.Getenv("DATA_PATH")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("OUTPUT_PATH")
	}

	return cfg
}
