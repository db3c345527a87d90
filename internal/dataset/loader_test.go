package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSourceFiles(t *testing.T, booksCSV, reviewsCSV string) string {
	t.Helper()
	dir := t.TempDir()

	if booksCSV != "" {
		if err := os.WriteFile(filepath.Join(dir, "books_data.csv"), []byte(booksCSV), 0644); err != nil {
			t.Fatalf("Failed to write books fixture: %v", err)
		}
	}
	if reviewsCSV != "" {
		if err := os.WriteFile(filepath.Join(dir, "books_rating.csv"), []byte(reviewsCSV), 0644); err != nil {
			t.Fatalf("Failed to write reviews fixture: %v", err)
		}
	}

	return dir
}

const booksFixture = `Title,description,authors,image,previewLink,publisher,publishedDate,infoLink,categories,ratingsCount
Book A,ignored,"['Author1', 'Author2']",img,link,pub,2001,info,"['Cat1']",100.0
Book B,ignored,['Solo'],img,link,pub,2002,info,"['Cat2', 'Cat3']",
`

const reviewsFixture = `Id,Title,Price,User_id,profileName,review/helpfulness,review/score,review/summary,review/text
1,Book A,,u1,name,1/1,4.5,summary,Great book!
2,Book B,,u2,name,0/0,3.0,summary,Meh.
`

func TestLoad(t *testing.T) {
	dir := writeSourceFiles(t, booksFixture, reviewsFixture)

	loader := NewLoader(dir)
	books, reviews, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(books) != 2 {
		t.Fatalf("Expected 2 books, got %d", len(books))
	}
	if books[0].Title != "Book A" {
		t.Errorf("Expected title 'Book A', got %s", books[0].Title)
	}
	if books[0].Authors != "['Author1', 'Author2']" {
		t.Errorf("Expected raw authors literal, got %q", books[0].Authors)
	}
	if books[0].RatingsCount != 100 {
		t.Errorf("Expected ratings count 100, got %d", books[0].RatingsCount)
	}
	// Absent count falls back to 0 rather than failing the load.
	if books[1].RatingsCount != 0 {
		t.Errorf("Expected ratings count 0 for missing value, got %d", books[1].RatingsCount)
	}

	if len(reviews) != 2 {
		t.Fatalf("Expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Score != 4.5 {
		t.Errorf("Expected score 4.5, got %f", reviews[0].Score)
	}
	if reviews[1].Text != "Meh." {
		t.Errorf("Expected text 'Meh.', got %q", reviews[1].Text)
	}
}

func TestLoadMissingBooksFile(t *testing.T) {
	dir := writeSourceFiles(t, "", reviewsFixture)

	loader := NewLoader(dir)
	_, _, err := loader.Load()
	if err == nil {
		t.Fatal("Expected error for missing books file, got nil")
	}
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestLoadMissingReviewsFile(t *testing.T) {
	dir := writeSourceFiles(t, booksFixture, "")

	loader := NewLoader(dir)
	_, _, err := loader.Load()
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	noTitle := `authors,categories,ratingsCount
['A'],['C'],1
`
	dir := writeSourceFiles(t, noTitle, reviewsFixture)

	loader := NewLoader(dir)
	_, _, err := loader.Load()
	if err == nil {
		t.Fatal("Expected error for missing Title column, got nil")
	}
}

func TestLoadMalformedScore(t *testing.T) {
	badReviews := `Title,review/score,review/text
Book A,not-a-number,text
`
	dir := writeSourceFiles(t, booksFixture, badReviews)

	loader := NewLoader(dir)
	_, _, err := loader.Load()
	if err == nil {
		t.Fatal("Expected error for malformed score, got nil")
	}
}

func TestLoadEmptyScoreDefaultsToZero(t *testing.T) {
	sparseReviews := `Title,review/score,review/text
Book A,,text without score
`
	dir := writeSourceFiles(t, booksFixture, sparseReviews)

	loader := NewLoader(dir)
	_, reviews, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Score != 0 {
		t.Errorf("Expected one review with score 0, got %+v", reviews)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"100", 100},
		{"3000.0", 3000},
		{" 42 ", 42},
		{"-5", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := parseCount(tt.input); got != tt.expected {
			t.Errorf("parseCount(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}
