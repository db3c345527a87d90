package dataset

import (
	"log/slog"
	"sort"
)

// dedupeKey covers every retained column. Two rows are duplicates only when
// they match on all of them.
type dedupeKey struct {
	title        string
	authors      string
	categories   string
	ratingsCount int
	score        float64
	text         string
}

// Process joins the two sources into the clean review table.
//
// Reviews whose title is absent from the book catalog are collected into the
// unmatched set before the join, over the original review slice, so join
// fan-out cannot affect it. The join itself is an inner equality join on
// Title: a title appearing on both sides multiple times produces the full
// cross product. After joining, authors and categories are decoded from their
// list-literal form (falling back to the raw value), rows with empty review
// text are dropped, and full-row duplicates are removed.
//
// The output is sorted for reproducibility, but callers must not rely on row
// order from this stage.
func Process(books []RawBook, reviews []RawReview) ([]Review, []Unmatched) {
	titles := make(map[string]struct{}, len(books))
	byTitle := make(map[string][]RawBook, len(books))
	for _, b := range books {
		titles[b.Title] = struct{}{}
		byTitle[b.Title] = append(byTitle[b.Title], b)
	}

	var unmatched []Unmatched
	for _, r := range reviews {
		if _, ok := titles[r.Title]; !ok {
			unmatched = append(unmatched, r)
		}
	}

	seen := make(map[dedupeKey]struct{})
	var cleaned []Review
	dropped := 0
	for _, r := range reviews {
		for _, b := range byTitle[r.Title] {
			if r.Text == "" {
				dropped++
				continue
			}

			row := Review{
				Title:        b.Title,
				Authors:      ParseListField(b.Authors),
				Categories:   ParseListField(b.Categories),
				RatingsCount: b.RatingsCount,
				Score:        r.Score,
				Text:         r.Text,
			}

			key := dedupeKey{
				title:        row.Title,
				authors:      row.Authors,
				categories:   row.Categories,
				ratingsCount: row.RatingsCount,
				score:        row.Score,
				text:         row.Text,
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			cleaned = append(cleaned, row)
		}
	}

	sort.Slice(cleaned, func(i, j int) bool {
		a, b := cleaned[i], cleaned[j]
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Authors != b.Authors {
			return a.Authors < b.Authors
		}
		if a.Categories != b.Categories {
			return a.Categories < b.Categories
		}
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.Text < b.Text
	})

	slog.Debug("Processing complete",
		"cleaned", len(cleaned),
		"unmatched", len(unmatched),
		"empty_text_dropped", dropped)

	return cleaned, unmatched
}
