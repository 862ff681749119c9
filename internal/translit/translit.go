// Package translit converts words to IPA using goruut's embedded
// grapheme-to-phoneme models.
package translit

import (
	"strings"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"

	"github.com/heartmarshall/phraselevel/internal/domain"
)

// goruutLanguages maps base language codes to goruut model names.
var goruutLanguages = map[string]string{
	"en": "English",
	"de": "German",
	"fr": "French",
}

// Transliterator wraps a goruut phonemizer. Models are loaded lazily per
// language on first use; the zero-cost constructor makes it safe to build
// one per process and share across workers.
type Transliterator struct {
	p *lib.Phonemizer
}

// New creates a Transliterator.
func New() *Transliterator {
	return &Transliterator{p: lib.NewPhonemizer(nil)}
}

// Supported reports whether lang has a transliteration model.
func Supported(lang string) bool {
	_, ok := goruutLanguages[domain.BaseLang(lang)]
	return ok
}

// ToIPA converts a single word to IPA. The boolean is false when the
// language has no model or the engine produced nothing for the word; such
// words simply contribute no pronunciation signal.
func (t *Transliterator) ToIPA(word, lang string) (string, bool) {
	model, ok := goruutLanguages[domain.BaseLang(lang)]
	if !ok {
		return "", false
	}

	resp := t.p.Sentence(requests.PhonemizeSentence{
		Language: model,
		Sentence: word,
	})

	var sb strings.Builder
	for i, w := range resp.Words {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(w.Phonetic)
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}
