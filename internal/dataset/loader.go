package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

const (
	booksBase   = "books_data"
	reviewsBase = "books_rating"
)

// ErrSourceNotFound is returned when a required source file is absent from
// the data directory.
var ErrSourceNotFound = errors.New("source file not found")

// Loader reads the two raw tabular sources from a data directory.
type Loader struct {
	dataPath string
}

// NewLoader creates a loader rooted at the given data directory.
func NewLoader(dataPath string) *Loader {
	return &Loader{dataPath: dataPath}
}

// Load reads both sources. It expects books_data and books_rating as .csv or
// .parquet files; a missing file fails the whole load with ErrSourceNotFound
// before anything is read.
func (l *Loader) Load() ([]RawBook, []RawReview, error) {
	booksPath, err := l.resolve(booksBase)
	if err != nil {
		return nil, nil, err
	}
	reviewsPath, err := l.resolve(reviewsBase)
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("Loading book source", "path", booksPath)
	books, err := loadBooks(booksPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", filepath.Base(booksPath), err)
	}

	slog.Debug("Loading review source", "path", reviewsPath)
	reviews, err := loadReviews(reviewsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", filepath.Base(reviewsPath), err)
	}

	slog.Debug("Sources loaded", "books", len(books), "reviews", len(reviews))

	return books, reviews, nil
}

// resolve finds a source file by base name, preferring CSV over parquet.
func (l *Loader) resolve(base string) (string, error) {
	for _, ext := range []string{".csv", ".parquet"} {
		path := filepath.Join(l.dataPath, base+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrSourceNotFound, base, l.dataPath)
}

func loadBooks(path string) ([]RawBook, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return loadBooksParquet(path)
	}
	return loadBooksCSV(path)
}

func loadReviews(path string) ([]RawReview, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return loadReviewsParquet(path)
	}
	return loadReviewsCSV(path)
}

// loadBooksCSV projects the book source to the columns the pipeline needs.
// Required columns: Title, authors, categories. ratingsCount is optional and
// parsed leniently (absent or malformed counts become 0).
func loadBooksCSV(path string) ([]RawBook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open book source: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := headerIndex(header, "Title", "authors", "categories")
	if err != nil {
		return nil, err
	}

	var books []RawBook
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		books = append(books, RawBook{
			Title:        field(record, cols, "Title"),
			Authors:      field(record, cols, "authors"),
			Categories:   field(record, cols, "categories"),
			RatingsCount: parseCount(field(record, cols, "ratingsCount")),
		})
	}

	return books, nil
}

// loadReviewsCSV projects the review source to Title, review/score and
// review/text. A malformed score is a read failure; the review text may be
// empty here, the cleaning step filters it later.
func loadReviewsCSV(path string) ([]RawReview, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open review source: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := headerIndex(header, "Title", "review/score", "review/text")
	if err != nil {
		return nil, err
	}

	var reviews []RawReview
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		raw := strings.TrimSpace(field(record, cols, "review/score"))
		score := 0.0
		if raw != "" {
			score, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid review/score %q at line %d: %w", raw, line, err)
			}
		}

		reviews = append(reviews, RawReview{
			Title: field(record, cols, "Title"),
			Score: score,
			Text:  field(record, cols, "review/text"),
		})
	}

	return reviews, nil
}

// headerIndex maps column names to positions and verifies required columns.
// Extra columns are ignored by projection.
func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return idx, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseCount parses a nonnegative count that sources often store as a float
// literal ("3000.0"). Absence and malformed values fall back to 0; a missing
// count is a data-quality anomaly, not a load failure.
func parseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}

// bookRow mirrors the book source schema for parquet inputs.
type bookRow struct {
	Title        string  `parquet:"Title"`
	Authors      string  `parquet:"authors,optional"`
	Categories   string  `parquet:"categories,optional"`
	RatingsCount float64 `parquet:"ratingsCount,optional"`
}

// reviewRow mirrors the review source schema for parquet inputs.
type reviewRow struct {
	Title string  `parquet:"Title"`
	Score float64 `parquet:"review/score"`
	Text  string  `parquet:"review/text,optional"`
}

func loadBooksParquet(path string) ([]RawBook, error) {
	rows, err := readParquet[bookRow](path)
	if err != nil {
		return nil, err
	}

	books := make([]RawBook, len(rows))
	for i, row := range rows {
		books[i] = RawBook{
			Title:        row.Title,
			Authors:      row.Authors,
			Categories:   row.Categories,
			RatingsCount: int(row.RatingsCount),
		}
	}
	return books, nil
}

func loadReviewsParquet(path string) ([]RawReview, error) {
	rows, err := readParquet[reviewRow](path)
	if err != nil {
		return nil, err
	}

	reviews := make([]RawReview, len(rows))
	for i, row := range rows {
		reviews[i] = RawReview{
			Title: row.Title,
			Score: row.Score,
			Text:  row.Text,
		}
	}
	return reviews, nil
}

func readParquet[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[T](pf)
	defer reader.Close()

	var out []T
	rows := make([]T, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		if n > 0 {
			out = append(out, rows[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return out, nil
}
