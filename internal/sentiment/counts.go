package sentiment

import (
	"strings"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/bookdata-labs/reviewpulse/internal/stats"
)

// Distribution counts scored reviews per sentiment label, in the fixed
// positive/neutral/negative order.
func Distribution(records []dataset.Review) []stats.LabelCount {
	counts := map[Label]int{}
	for _, r := range records {
		counts[Label(r.Sentiment)]++
	}

	out := make([]stats.LabelCount, 0, 3)
	for _, label := range []Label{Positive, Neutral, Negative} {
		out = append(out, stats.LabelCount{Label: string(label), Count: counts[label]})
	}
	return out
}

// TopBooksByLabel returns the n titles with the most reviews of the given
// label.
func TopBooksByLabel(records []dataset.Review, label Label, n int) []stats.LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Sentiment == string(label) {
			counts[r.Title]++
		}
	}
	return stats.TopCounts(counts, n)
}

// TopAuthorsByLabel returns the n exploded authors with the most reviews of
// the given label.
func TopAuthorsByLabel(records []dataset.Review, label Label, n int) []stats.LabelCount {
	return topExplodedByLabel(records, label, n, func(r dataset.Review) string { return r.Authors })
}

// TopCategoriesByLabel returns the n exploded categories with the most
// reviews of the given label.
func TopCategoriesByLabel(records []dataset.Review, label Label, n int) []stats.LabelCount {
	return topExplodedByLabel(records, label, n, func(r dataset.Review) string { return r.Categories })
}

// TopAuthorsByCompound returns the n exploded authors with the highest
// average compound score across their reviews.
func TopAuthorsByCompound(records []dataset.Review, n int) []stats.LabelValue {
	return stats.TopValues(authorCompoundMeans(records), n)
}

// BottomAuthorsByCompound returns the n exploded authors with the lowest
// average compound score across their reviews.
func BottomAuthorsByCompound(records []dataset.Review, n int) []stats.LabelValue {
	return stats.BottomValues(authorCompoundMeans(records), n)
}

func authorCompoundMeans(records []dataset.Review) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		for _, a := range strings.Split(r.Authors, ", ") {
			if a != "" {
				sums[a] += r.Compound
				counts[a]++
			}
		}
	}

	means := make(map[string]float64, len(sums))
	for a, sum := range sums {
		means[a] = sum / float64(counts[a])
	}
	return means
}

func topExplodedByLabel(records []dataset.Review, label Label, n int, field func(dataset.Review) string) []stats.LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Sentiment != string(label) {
			continue
		}
		for _, elem := range strings.Split(field(r), ", ") {
			if elem != "" {
				counts[elem]++
			}
		}
	}
	return stats.TopCounts(counts, n)
}
