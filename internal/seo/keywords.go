package seo

import (
	"regexp"
	"strings"

	"github.com/copydesk/copydesk/internal/quality"
)

// MaxKeywordWords caps the primary keyword phrase length.
const MaxKeywordWords = 3

var nonKeywordChars = regexp.MustCompile(`[^a-z0-9\s-]`)

// PrimaryKeyword derives the search phrase a post is assumed to target:
// the first (up to) three significant words of the lowercased title,
// joined by spaces. Hyphens inside words are kept; stop words and words
// of two characters or fewer are dropped.
func PrimaryKeyword(title string) string {
	cleaned := nonKeywordChars.ReplaceAllString(strings.ToLower(title), "")

	var kept []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 || quality.IsStopWord(w) {
			continue
		}
		kept = append(kept, w)
		if len(kept) == MaxKeywordWords {
			break
		}
	}
	return strings.Join(kept, " ")
}

var nonWordChars = regexp.MustCompile(`[^a-z0-9\s]`)

// Tokenize normalizes text to a lowercase alphanumeric word sequence,
// the form used for density arithmetic.
func Tokenize(text string) []string {
	return strings.Fields(nonWordChars.ReplaceAllString(strings.ToLower(text), " "))
}

// CountPhrase counts occurrences of the phrase (as consecutive tokens)
// in the word sequence. Overlapping matches are each counted.
func CountPhrase(words, phrase []string) int {
	if len(phrase) == 0 || len(words) < len(phrase) {
		return 0
	}

	count := 0
	for i := 0; i+len(phrase) <= len(words); i++ {
		matched := true
		for j, p := range phrase {
			if words[i+j] != p {
				matched = false
				break
			}
		}
		if matched {
			count++
		}
	}
	return count
}

// Density returns the keyword density of a body as a percentage of its
// total word count.
func Density(body, keyword string) float64 {
	words := Tokenize(body)
	if len(words) == 0 || keyword == "" {
		return 0
	}
	count := CountPhrase(words, strings.Fields(keyword))
	return float64(count) / float64(len(words)) * 100
}
