package sentiment

import (
	"testing"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
)

func TestCompoundEmptyText(t *testing.T) {
	analyzer := NewAnalyzer()

	compound := analyzer.Compound("")
	if compound != 0.0 {
		t.Errorf("Expected compound 0.0 for empty text, got %v", compound)
	}
	if Classify(compound) != Neutral {
		t.Errorf("Expected neutral label for empty text, got %s", Classify(compound))
	}
}

func TestCompoundPolarity(t *testing.T) {
	analyzer := NewAnalyzer()

	positive := analyzer.Compound("this book is wonderful, i loved every page!")
	if positive <= 0.05 {
		t.Errorf("Expected clearly positive compound, got %v", positive)
	}

	negative := analyzer.Compound("terrible book, i hated it. a complete waste.")
	if negative >= -0.05 {
		t.Errorf("Expected clearly negative compound, got %v", negative)
	}
}

func TestPreprocess(t *testing.T) {
	records := []dataset.Review{
		{Title: "A", Text: "Great BOOK!"},
		{Title: "B", Text: ""},
	}

	out := Preprocess(records)

	if out[0].CleanText != "great book!" {
		t.Errorf("Expected lowercased clean text, got %q", out[0].CleanText)
	}
	if out[0].Text != "Great BOOK!" {
		t.Errorf("Original text was altered: %q", out[0].Text)
	}
	if out[1].CleanText != "" {
		t.Errorf("Expected empty clean text, got %q", out[1].CleanText)
	}

	// Input slice must not be touched.
	if records[0].CleanText != "" {
		t.Error("Preprocess mutated its input")
	}
}

func TestScore(t *testing.T) {
	analyzer := NewAnalyzer()

	records := Preprocess([]dataset.Review{
		{Title: "A", Text: "An absolutely wonderful, brilliant book. Loved it!"},
		{Title: "B", Text: "Horrible. The worst book I have ever read."},
		{Title: "C", Text: ""},
	})

	scored := analyzer.Score(records)

	if scored[0].Sentiment != string(Positive) {
		t.Errorf("Expected positive sentiment, got %s (compound %v)", scored[0].Sentiment, scored[0].Compound)
	}
	if scored[1].Sentiment != string(Negative) {
		t.Errorf("Expected negative sentiment, got %s (compound %v)", scored[1].Sentiment, scored[1].Compound)
	}
	if scored[2].Compound != 0.0 || scored[2].Sentiment != string(Neutral) {
		t.Errorf("Expected neutral 0.0 for empty text, got %s (%v)", scored[2].Sentiment, scored[2].Compound)
	}

	for _, r := range scored {
		if r.Compound < -1 || r.Compound > 1 {
			t.Errorf("Compound %v out of range for %s", r.Compound, r.Title)
		}
	}

	// Scoring must not mutate its input.
	for _, r := range records {
		if r.Compound != 0 || r.Sentiment != "" {
			t.Error("Score mutated its input")
		}
	}
}
