package dataset

// RawBook is one projected row from the book catalog source.
// Authors and Categories may still be list-literal encoded at this point.
type RawBook struct {
	Title        string
	Authors      string
	Categories   string
	RatingsCount int
}

// RawReview is one projected row from the review source.
type RawReview struct {
	Title string
	Score float64
	Text  string
}

// Unmatched is a review whose title has no catalog entry. It is collected
// before the join as a diagnostic side artifact and never merged back into
// the pipeline.
type Unmatched = RawReview

// Review is one joined, cleaned review row. CleanText, Compound and
// Sentiment are filled in by the sentiment stage; the loader leaves them
// zero-valued.
type Review struct {
	Title        string  `json:"title" parquet:"title"`
	Authors      string  `json:"authors" parquet:"authors"`
	Categories   string  `json:"categories" parquet:"categories"`
	RatingsCount int     `json:"ratings_count" parquet:"ratings_count"`
	Score        float64 `json:"score" parquet:"score"`
	Text         string  `json:"text" parquet:"text"`
	CleanText    string  `json:"clean_text" parquet:"clean_text"`
	Compound     float64 `json:"compound" parquet:"compound"`
	Sentiment    string  `json:"sentiment" parquet:"sentiment"`
}
