// Package bestbooks groups scored review records per book and ranks the
// results by review volume, average rating and average sentiment.
package bestbooks

import (
	"sort"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
)

// Aggregate is one row per distinct (title, authors, categories) triple.
// It is derived read-only data, recomputed fresh each run.
type Aggregate struct {
	Title            string
	Authors          string
	Categories       string
	ReviewCount      int
	AverageRating    float64
	AverageSentiment float64
}

type groupKey struct {
	title      string
	authors    string
	categories string
}

// AggregateReviews groups records by the exact (Title, Authors, Categories)
// triple as it appears post-cleaning; no further normalization happens here,
// so differently formatted author strings form distinct groups.
//
// The result is sorted ascending by (title, authors, categories). The top-N
// rankings sort stably on top of this order, so metric ties always resolve
// to ascending title, keeping report output reproducible.
func AggregateReviews(records []dataset.Review) []Aggregate {
	type acc struct {
		count       int
		scoreSum    float64
		compoundSum float64
	}

	groups := make(map[groupKey]*acc)
	for _, r := range records {
		key := groupKey{title: r.Title, authors: r.Authors, categories: r.Categories}
		a := groups[key]
		if a == nil {
			a = &acc{}
			groups[key] = a
		}
		a.count++
		a.scoreSum += r.Score
		a.compoundSum += r.Compound
	}

	out := make([]Aggregate, 0, len(groups))
	for key, a := range groups {
		out = append(out, Aggregate{
			Title:            key.title,
			Authors:          key.authors,
			Categories:       key.categories,
			ReviewCount:      a.count,
			AverageRating:    a.scoreSum / float64(a.count),
			AverageSentiment: a.compoundSum / float64(a.count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		if a.Authors != b.Authors {
			return a.Authors < b.Authors
		}
		return a.Categories < b.Categories
	})

	return out
}

// TopByReviewCount returns the n most-reviewed books.
func TopByReviewCount(aggs []Aggregate, n int) []Aggregate {
	return top(aggs, n, func(a, b Aggregate) bool { return a.ReviewCount > b.ReviewCount })
}

// TopByAverageRating returns the n best-rated books.
func TopByAverageRating(aggs []Aggregate, n int) []Aggregate {
	return top(aggs, n, func(a, b Aggregate) bool { return a.AverageRating > b.AverageRating })
}

// TopBySentiment returns the n books with the highest average compound score.
func TopBySentiment(aggs []Aggregate, n int) []Aggregate {
	return top(aggs, n, func(a, b Aggregate) bool { return a.AverageSentiment > b.AverageSentiment })
}

// top sorts a copy of the aggregates descending by the given metric. The
// stable sort preserves the input's ascending title order for ties.
func top(aggs []Aggregate, n int, less func(a, b Aggregate) bool) []Aggregate {
	out := append([]Aggregate(nil), aggs...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
