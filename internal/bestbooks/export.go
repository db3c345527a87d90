package bestbooks

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Report file basenames, one per ranking criterion.
const (
	ReviewCountReport   = "top_books_by_review_count"
	AverageRatingReport = "top_books_by_average_rating"
	SentimentReport     = "top_books_by_sentiment"
)

// Exporter writes top-N rankings as tabular report files. Each export call
// stands alone: a write failure fails that report only.
type Exporter struct {
	outputDir string
	format    string // "xlsx" or "csv"
}

// NewExporter creates an exporter writing to outputDir in the given format.
func NewExporter(outputDir, format string) *Exporter {
	return &Exporter{outputDir: outputDir, format: format}
}

// ExportReviewCount writes the most-reviewed ranking and returns the file path.
func (e *Exporter) ExportReviewCount(rows []Aggregate) (string, error) {
	return e.export(ReviewCountReport, "Review Count", rows, func(a Aggregate) any {
		return a.ReviewCount
	})
}

// ExportAverageRating writes the best-rated ranking and returns the file path.
func (e *Exporter) ExportAverageRating(rows []Aggregate) (string, error) {
	return e.export(AverageRatingReport, "Average Rating", rows, func(a Aggregate) any {
		return a.AverageRating
	})
}

// ExportSentiment writes the best-sentiment ranking and returns the file path.
func (e *Exporter) ExportSentiment(rows []Aggregate) (string, error) {
	return e.export(SentimentReport, "Average Sentiment", rows, func(a Aggregate) any {
		return a.AverageSentiment
	})
}

func (e *Exporter) export(name, metricHeader string, rows []Aggregate, metric func(Aggregate) any) (string, error) {
	header := []string{"Title", "authors", "categories", metricHeader}

	switch e.format {
	case "csv":
		path := filepath.Join(e.outputDir, name+".csv")
		if err := writeCSV(path, header, rows, metric); err != nil {
			return "", fmt.Errorf("failed to export %s: %w", name, err)
		}
		return path, nil
	case "", "xlsx":
		path := filepath.Join(e.outputDir, name+".xlsx")
		if err := writeXLSX(path, header, rows, metric); err != nil {
			return "", fmt.Errorf("failed to export %s: %w", name, err)
		}
		return path, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", e.format)
	}
}

func writeXLSX(path string, header []string, rows []Aggregate, metric func(Aggregate) any) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close spreadsheet", "path", path, "error", err)
		}
	}()

	const sheet = "Sheet1"

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []any{row.Title, row.Authors, row.Categories, metric(row)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func writeCSV(path string, header []string, rows []Aggregate, metric func(Aggregate) any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{row.Title, row.Authors, row.Categories, formatMetric(metric(row))}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMetric(v any) string {
	switch m := v.(type) {
	case int:
		return strconv.Itoa(m)
	case float64:
		return strconv.FormatFloat(m, 'f', 4, 64)
	default:
		return fmt.Sprintf("%v", m)
	}
}
