package dataset

import (
	"reflect"
	"testing"
)

func TestProcessJoinAndUnmatched(t *testing.T) {
	books := []RawBook{
		{Title: "Book A", Authors: "['Author1']", Categories: "['Cat1']", RatingsCount: 100},
	}
	reviews := []RawReview{
		{Title: "Book A", Score: 4.5, Text: "Great book!"},
		{Title: "Book B", Score: 3.0, Text: "Meh."},
	}

	cleaned, unmatched := Process(books, reviews)

	if len(cleaned) != 1 {
		t.Fatalf("Expected 1 cleaned record, got %d", len(cleaned))
	}
	expected := Review{
		Title:        "Book A",
		Authors:      "Author1",
		Categories:   "Cat1",
		RatingsCount: 100,
		Score:        4.5,
		Text:         "Great book!",
	}
	if cleaned[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, cleaned[0])
	}

	if len(unmatched) != 1 {
		t.Fatalf("Expected 1 unmatched record, got %d", len(unmatched))
	}
	if unmatched[0].Title != "Book B" {
		t.Errorf("Expected unmatched title 'Book B', got %s", unmatched[0].Title)
	}
}

func TestProcessTitlesExistOnBothSides(t *testing.T) {
	books := []RawBook{
		{Title: "A"},
		{Title: "B"},
	}
	reviews := []RawReview{
		{Title: "A", Score: 5, Text: "x"},
		{Title: "C", Score: 1, Text: "y"},
	}

	cleaned, _ := Process(books, reviews)

	bookTitles := map[string]bool{"A": true, "B": true}
	reviewTitles := map[string]bool{"A": true, "C": true}
	for _, r := range cleaned {
		if !bookTitles[r.Title] || !reviewTitles[r.Title] {
			t.Errorf("Joined title %q missing from one of the inputs", r.Title)
		}
	}
}

func TestProcessFanOut(t *testing.T) {
	// A title duplicated on the book side crosses with every review for it.
	books := []RawBook{
		{Title: "Dup", Authors: "['A1']"},
		{Title: "Dup", Authors: "['A2']"},
	}
	reviews := []RawReview{
		{Title: "Dup", Score: 4, Text: "first"},
		{Title: "Dup", Score: 2, Text: "second"},
	}

	cleaned, unmatched := Process(books, reviews)

	if len(cleaned) != 4 {
		t.Errorf("Expected 4 joined rows from 2x2 fan-out, got %d", len(cleaned))
	}
	// Fan-out must not leak into the unmatched set.
	if len(unmatched) != 0 {
		t.Errorf("Expected no unmatched records, got %d", len(unmatched))
	}
}

func TestProcessUnmatchedComputedBeforeJoin(t *testing.T) {
	books := []RawBook{
		{Title: "Known"},
		{Title: "Known"},
	}
	reviews := []RawReview{
		{Title: "Known", Score: 5, Text: "ok"},
		{Title: "Missing", Score: 1, Text: "gone"},
		{Title: "Missing", Score: 2, Text: "gone again"},
	}

	_, unmatched := Process(books, reviews)

	if len(unmatched) != 2 {
		t.Fatalf("Expected 2 unmatched records, got %d", len(unmatched))
	}
	for _, r := range unmatched {
		if r.Title != "Missing" {
			t.Errorf("Unexpected unmatched title %q", r.Title)
		}
	}
}

func TestProcessDropsEmptyText(t *testing.T) {
	books := []RawBook{{Title: "A"}}
	reviews := []RawReview{
		{Title: "A", Score: 5, Text: ""},
		{Title: "A", Score: 4, Text: "kept"},
	}

	cleaned, _ := Process(books, reviews)

	if len(cleaned) != 1 {
		t.Fatalf("Expected 1 cleaned record, got %d", len(cleaned))
	}
	for _, r := range cleaned {
		if r.Text == "" {
			t.Error("Cleaned output contains a record with empty text")
		}
	}
}

func TestProcessDeduplicates(t *testing.T) {
	books := []RawBook{{Title: "A", Authors: "['X']", Categories: "['Y']", RatingsCount: 10}}
	reviews := []RawReview{
		{Title: "A", Score: 5, Text: "same"},
		{Title: "A", Score: 5, Text: "same"},
		{Title: "A", Score: 5, Text: "different"},
	}

	cleaned, _ := Process(books, reviews)

	if len(cleaned) != 2 {
		t.Fatalf("Expected 2 records after dedupe, got %d", len(cleaned))
	}

	seen := map[Review]bool{}
	for _, r := range cleaned {
		if seen[r] {
			t.Errorf("Duplicate row in cleaned output: %+v", r)
		}
		seen[r] = true
	}
}

func TestProcessMalformedListFieldsKept(t *testing.T) {
	books := []RawBook{
		{Title: "A", Authors: "Plain Author", Categories: "['Unterminated"},
	}
	reviews := []RawReview{
		{Title: "A", Score: 3, Text: "text"},
	}

	cleaned, _ := Process(books, reviews)

	if len(cleaned) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(cleaned))
	}
	if cleaned[0].Authors != "Plain Author" {
		t.Errorf("Expected plain author kept as is, got %q", cleaned[0].Authors)
	}
	if cleaned[0].Categories != "['Unterminated" {
		t.Errorf("Expected malformed categories kept as is, got %q", cleaned[0].Categories)
	}
}

func TestProcessDeterministicOutput(t *testing.T) {
	books := []RawBook{
		{Title: "B", Authors: "['A2']"},
		{Title: "A", Authors: "['A1']"},
	}
	reviews := []RawReview{
		{Title: "B", Score: 2, Text: "b review"},
		{Title: "A", Score: 4, Text: "a review"},
		{Title: "A", Score: 1, Text: "another a review"},
	}

	first, _ := Process(books, reviews)
	second, _ := Process(books, reviews)

	if !reflect.DeepEqual(first, second) {
		t.Error("Process output differs between identical runs")
	}
}

func TestProcessEmptyInputs(t *testing.T) {
	cleaned, unmatched := Process(nil, nil)
	if len(cleaned) != 0 || len(unmatched) != 0 {
		t.Errorf("Expected empty outputs, got %d cleaned and %d unmatched", len(cleaned), len(unmatched))
	}
}
