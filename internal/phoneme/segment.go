package phoneme

import "strings"

// cleaner strips marks that carry no articulatory features of their own:
// primary and secondary stress, the non-syllabic and nasalization combining
// marks, velarization, spaces, the undertie, and syllable dots.
var cleaner = strings.NewReplacer(
	"ˈ", "",
	"ˌ", "",
	"̯", "", // combining inverted breve below (non-syllabic)
	"ˠ", "",
	"̃", "", // combining tilde (nasalization)
	" ", "",
	"‿", "",
	".", "",
)

// Segments splits an IPA transcription into phoneme units, longest match
// first, so affricates and long vowels stay whole. Runes the table does not
// know become single-rune segments and score as maximally complex.
func (t *Table) Segments(ipa string) []string {
	cleaned := cleaner.Replace(ipa)
	if cleaned == "" {
		return nil
	}

	runes := []rune(cleaned)
	segs := make([]string, 0, len(runes))
	for i := 0; i < len(runes); {
		n := t.maxRunes
		if rem := len(runes) - i; rem < n {
			n = rem
		}
		matched := false
		for ; n >= 1; n-- {
			cand := string(runes[i : i+n])
			if _, ok := t.segments[cand]; ok {
				segs = append(segs, cand)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			segs = append(segs, string(runes[i]))
			i++
		}
	}
	return segs
}
