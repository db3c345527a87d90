package sentiment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
)

// ErrNotFound is returned when a lookup key matches no scored records.
var ErrNotFound = errors.New("no matching records")

// BookSentiment returns the average compound score and label for a single
// book, matched by exact title.
func BookSentiment(records []dataset.Review, title string) (float64, Label, error) {
	sum := 0.0
	n := 0
	for _, r := range records {
		if r.Title == title {
			sum += r.Compound
			n++
		}
	}
	if n == 0 {
		return 0, "", fmt.Errorf("book %q: %w", title, ErrNotFound)
	}

	avg := sum / float64(n)
	return avg, Classify(avg), nil
}

// CategorySentiment returns the average compound score and label for a
// category. Comma-joined category strings are exploded to one entry per
// category before matching, so a review tagged "Fiction, Horror" counts
// toward both.
func CategorySentiment(records []dataset.Review, category string) (float64, Label, error) {
	sum := 0.0
	n := 0
	for _, r := range records {
		for _, c := range strings.Split(r.Categories, ", ") {
			if c == category {
				sum += r.Compound
				n++
			}
		}
	}
	if n == 0 {
		return 0, "", fmt.Errorf("category %q: %w", category, ErrNotFound)
	}

	avg := sum / float64(n)
	return avg, Classify(avg), nil
}
