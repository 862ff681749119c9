package domain

import "strings"

// Languages the pipeline can fully analyze. Transliteration, lemma profiles
// and translation operate on the base code; numeric-level calibration is
// keyed by the full locale when one is given (e.g. "de-DE").
var supportedBases = map[string]bool{
	"en": true,
	"de": true,
	"fr": true,
}

// BaseLang reduces a language code to its lower-cased base: "de-DE" -> "de",
// "EN" -> "en". An empty code stays empty.
func BaseLang(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexByte(code, '-'); i >= 0 {
		return code[:i]
	}
	return code
}

// IsSupportedLanguage reports whether the code (base or full locale) belongs
// to a language the analyzer supports.
func IsSupportedLanguage(code string) bool {
	return supportedBases[BaseLang(code)]
}

// SupportedLanguages returns the supported base codes, for error messages.
func SupportedLanguages() []string {
	return []string{"de", "en", "fr"}
}
