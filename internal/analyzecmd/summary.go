package analyzecmd

import (
	"fmt"
	"strings"

	"github.com/bookdata-labs/reviewpulse/internal/config"
	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/bookdata-labs/reviewpulse/internal/sentiment"
	"github.com/bookdata-labs/reviewpulse/internal/stats"
)

// printSummary prints the exploratory aggregates for a run: totals, the
// sentiment distribution and the popularity rankings. Rendering stops at
// plain label/value lines; charting is someone else's job.
func printSummary(records []dataset.Review, opts config.Options) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("REVIEW ANALYSIS SUMMARY")
	fmt.Println(strings.Repeat("=", 70))

	reviews, ratings := stats.Totals(records)
	fmt.Printf("Clean Reviews: %d\n", reviews)
	fmt.Printf("Catalog Ratings: %d\n", ratings)

	fmt.Println("\nSENTIMENT DISTRIBUTION")
	fmt.Println(strings.Repeat("-", 70))
	for _, lc := range sentiment.Distribution(records) {
		fmt.Printf("  %-10s %d\n", lc.Label, lc.Count)
	}

	fmt.Println("\nMOST REVIEWED AUTHORS")
	fmt.Println(strings.Repeat("-", 70))
	printCounts(stats.MostPopularAuthors(records, 5))

	fmt.Println("\nMOST REVIEWED CATEGORIES")
	fmt.Println(strings.Repeat("-", 70))
	printCounts(stats.MostPopularCategories(records, 5))

	fmt.Printf("\nBEST RATED BOOKS (>= %d catalog ratings)\n", opts.MinRatingsCount)
	fmt.Println(strings.Repeat("-", 70))
	for _, lv := range stats.TopBooksByRatings(records, 5, opts.MinRatingsCount) {
		fmt.Printf("  %-50s %.2f\n", truncate(lv.Label, 50), lv.Value)
	}

	fmt.Println("\nAUTHORS WITH MOST 5.0 REVIEWS")
	fmt.Println(strings.Repeat("-", 70))
	printCounts(stats.TopAuthorsByRating(records, 5, 5))

	fmt.Println("\nAUTHORS WITH MOST 1.0 REVIEWS")
	fmt.Println(strings.Repeat("-", 70))
	printCounts(stats.TopAuthorsByRating(records, 1, 5))

	fmt.Println("\nAUTHORS BY AVERAGE SENTIMENT (HIGHEST)")
	fmt.Println(strings.Repeat("-", 70))
	printValues(sentiment.TopAuthorsByCompound(records, 5))

	fmt.Println("\nAUTHORS BY AVERAGE SENTIMENT (LOWEST)")
	fmt.Println(strings.Repeat("-", 70))
	printValues(sentiment.BottomAuthorsByCompound(records, 5))

	for _, label := range []sentiment.Label{sentiment.Positive, sentiment.Negative} {
		name := strings.ToUpper(string(label))

		fmt.Printf("\nBOOKS WITH MOST %s REVIEWS\n", name)
		fmt.Println(strings.Repeat("-", 70))
		printCounts(sentiment.TopBooksByLabel(records, label, 5))

		fmt.Printf("\nAUTHORS WITH MOST %s REVIEWS\n", name)
		fmt.Println(strings.Repeat("-", 70))
		printCounts(sentiment.TopAuthorsByLabel(records, label, 5))

		fmt.Printf("\nCATEGORIES WITH MOST %s REVIEWS\n", name)
		fmt.Println(strings.Repeat("-", 70))
		printCounts(sentiment.TopCategoriesByLabel(records, label, 5))
	}

	fmt.Println(strings.Repeat("=", 70))
}

func printCounts(counts []stats.LabelCount) {
	for _, lc := range counts {
		fmt.Printf("  %-50s %d\n", truncate(lc.Label, 50), lc.Count)
	}
}

func printValues(values []stats.LabelValue) {
	for _, lv := range values {
		fmt.Printf("  %-50s %.2f\n", truncate(lv.Label, 50), lv.Value)
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
