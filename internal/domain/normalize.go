package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a word for cache keys and norms lookups:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// StripNonAlnum removes every rune that is not a letter or a digit.
// Used as the second-chance key for norms lookups ("dog," -> "dog").
func StripNonAlnum(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
