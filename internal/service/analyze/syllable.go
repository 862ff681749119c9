package analyze

import "strings"

// syllableVowels is the fixed vowel alphabet of the heuristic: Latin vowels
// plus German umlauts, both cases.
const syllableVowels = "aeiouäöüAEIOUÄÖÜ"

// CountSyllables estimates the syllable count of a word by counting
// transitions from a non-vowel (or the start) into a vowel. Every word
// counts as at least one syllable. Pure function, no I/O.
func CountSyllables(word string) int {
	count := 0
	prevWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(syllableVowels, r)
		if isVowel && !prevWasVowel {
			count++
		}
		prevWasVowel = isVowel
	}
	if count < 1 {
		return 1
	}
	return count
}
