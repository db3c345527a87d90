// Package stats computes the exploratory summary aggregates shown after a
// run: totals, popularity counts and per-book rating averages. Results are
// plain (label, value) pairs so any renderer can consume them.
package stats

import (
	"sort"
	"strings"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
)

// LabelCount is one counted label, e.g. an author and their review count.
type LabelCount struct {
	Label string
	Count int
}

// LabelValue is one labeled metric, e.g. a title and its average rating.
type LabelValue struct {
	Label string
	Value float64
}

// Totals returns the number of review rows and the summed catalog ratings
// count across the cleaned table.
func Totals(records []dataset.Review) (reviews int, ratings int) {
	for _, r := range records {
		reviews++
		ratings += r.RatingsCount
	}
	return reviews, ratings
}

// MostPopularAuthors counts reviews per author, exploding comma-joined
// author strings to one entry per author.
func MostPopularAuthors(records []dataset.Review, n int) []LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		for _, a := range explode(r.Authors) {
			counts[a]++
		}
	}
	return TopCounts(counts, n)
}

// MostPopularCategories counts reviews per category, exploded the same way.
func MostPopularCategories(records []dataset.Review, n int) []LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		for _, c := range explode(r.Categories) {
			counts[c]++
		}
	}
	return TopCounts(counts, n)
}

// AverageRatingPerBook returns the n best mean review scores per title.
func AverageRatingPerBook(records []dataset.Review, n int) []LabelValue {
	return topMeanScores(records, n, func(dataset.Review) bool { return true })
}

// TopBooksByRatings returns the n best mean review scores among books whose
// catalog ratings count meets the threshold, filtering out titles too obscure
// for their average to mean much.
func TopBooksByRatings(records []dataset.Review, n, minRatingsCount int) []LabelValue {
	return topMeanScores(records, n, func(r dataset.Review) bool {
		return r.RatingsCount >= minRatingsCount
	})
}

// TopAuthorsByRating counts, per exploded author, the reviews with exactly
// the given score, and returns the n highest counts.
func TopAuthorsByRating(records []dataset.Review, rating float64, n int) []LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Score != rating {
			continue
		}
		for _, a := range explode(r.Authors) {
			counts[a]++
		}
	}
	return TopCounts(counts, n)
}

// TopCounts ranks a count map descending, breaking ties by ascending label,
// and returns the first n entries.
func TopCounts(counts map[string]int, n int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return head(out, n)
}

// TopValues ranks a value map descending, breaking ties by ascending label,
// and returns the first n entries.
func TopValues(values map[string]float64, n int) []LabelValue {
	return rankValues(values, n, func(a, b LabelValue) bool { return a.Value > b.Value })
}

// BottomValues ranks a value map ascending, breaking ties by ascending label,
// and returns the first n entries.
func BottomValues(values map[string]float64, n int) []LabelValue {
	return rankValues(values, n, func(a, b LabelValue) bool { return a.Value < b.Value })
}

func rankValues(values map[string]float64, n int, before func(a, b LabelValue) bool) []LabelValue {
	out := make([]LabelValue, 0, len(values))
	for label, value := range values {
		out = append(out, LabelValue{Label: label, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return before(out[i], out[j])
		}
		return out[i].Label < out[j].Label
	})
	return head(out, n)
}

func topMeanScores(records []dataset.Review, n int, keep func(dataset.Review) bool) []LabelValue {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if !keep(r) {
			continue
		}
		sums[r.Title] += r.Score
		counts[r.Title]++
	}

	means := make(map[string]float64, len(sums))
	for title, sum := range sums {
		means[title] = sum / float64(counts[title])
	}
	return TopValues(means, n)
}

// explode splits a comma-joined list field into its elements. Empty fields
// explode to nothing.
func explode(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, ", ")
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
