// Package sentiment scores cleaned review records with a lexicon and
// rule-based polarity analyzer (VADER) and classifies them into three labels.
package sentiment

import (
	"strings"

	"github.com/bookdata-labs/reviewpulse/internal/dataset"
	"github.com/jonreiter/govader"
)

// Label is the three-way sentiment classification of a review.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Analyzer wraps the VADER sentiment analyzer. It is stateless with respect
// to the records it scores.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates an analyzer with the default VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the compound polarity score in [-1, 1] for a text.
// Empty text scores exactly 0.
func (a *Analyzer) Compound(text string) float64 {
	if text == "" {
		return 0
	}
	return a.vader.PolarityScores(text).Compound
}

// Preprocess returns a copy of the records with CleanText set to the
// lowercased review text. The original Text field is left untouched.
func Preprocess(records []dataset.Review) []dataset.Review {
	out := make([]dataset.Review, len(records))
	copy(out, records)
	for i := range out {
		out[i].CleanText = strings.ToLower(out[i].Text)
	}
	return out
}

// Score returns a copy of the records with Compound and Sentiment filled in
// from the preprocessed text. The input slice is not mutated.
func (a *Analyzer) Score(records []dataset.Review) []dataset.Review {
	out := make([]dataset.Review, len(records))
	copy(out, records)
	for i := range out {
		compound := a.Compound(out[i].CleanText)
		out[i].Compound = compound
		out[i].Sentiment = string(Classify(compound))
	}
	return out
}
