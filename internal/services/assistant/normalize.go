package assistant

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text. Punctuation and spacing are kept, so
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A Caser keeps state between calls and must not be shared
	return cases.Lower(language.Und).String(text)
}
