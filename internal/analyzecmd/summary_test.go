package analyzecmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "Book A",
			maxLen:   10,
			expected: "Book A",
		},
		{
			name:     "exact length unchanged",
			input:    "1234567890",
			maxLen:   10,
			expected: "1234567890",
		},
		{
			name:     "long string truncated",
			input:    "a very long book title indeed",
			maxLen:   10,
			expected: "a very ...",
		},
		{
			name:     "multi-byte title cut on rune boundary",
			input:    "Cien años de soledad — edición conmemorativa",
			maxLen:   12,
			expected: "Cien años...",
		},
		{
			name:     "all multi-byte runes",
			input:    "終わりのクロニクル完全版セット",
			maxLen:   8,
			expected: "終わりのク...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
			if !utf8.ValidString(result) {
				t.Errorf("Truncated string is not valid UTF-8: %q", result)
			}
		})
	}
}
