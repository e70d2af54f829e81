// Package textmatch provides word-level helpers for keyword relevance scoring.
package textmatch

import (
	"strings"
	"unicode"
)

var stopWords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "are": true,
	"with": true, "this": true, "that": true, "from": true, "was": true,
	"were": true, "what": true, "when": true, "where": true, "how": true,
	"why": true, "tell": true, "show": true, "about": true, "can": true,
}

// Tokenize lowercases text, turns every non-word rune into a separator and
// keeps words longer than two runes that are not stop words. Order and
// duplicates are preserved.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	words := make([]string, 0)
	for _, w := range strings.Fields(cleaned) {
		if len([]rune(w)) <= 2 || stopWords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// KeywordOverlapScore is the Jaccard similarity of two token lists:
// |A ∩ B| / |A ∪ B| over their distinct members. Empty input scores 0.
func KeywordOverlapScore(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, w := range a {
		setA[w] = true
	}
	setB := make(map[string]bool, len(b))
	for _, w := range b {
		setB[w] = true
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}

	union := len(setA)
	for w := range setB {
		if !setA[w] {
			union++
		}
	}

	return float64(intersection) / float64(union)
}

// CountContained returns how many of the keywords occur in text as substrings
func CountContained(text string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
