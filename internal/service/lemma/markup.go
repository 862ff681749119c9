package lemma

import "strings"

// refPattern names a base-form reference template and the positional
// argument (0-based, named arguments skipped) that carries the base form.
type refPattern struct {
	template string
	argIndex int
}

// profile describes how one Wiktionary language edition marks inflected
// forms and where those entries point back to the base form.
type profile struct {
	// sectionMarker identifies the level-2 heading that opens the
	// language's own section on a page.
	sectionMarker string
	// isEntryHeading reports whether a line opens a new entry block
	// (part-of-speech heading) inside the language section.
	isEntryHeading func(line string) bool
	// inflectionTags mark the first entry block as an inflected form.
	inflectionTags []string
	// baseFormRefs are scanned in order; the first match wins.
	baseFormRefs []refPattern
}

var profiles = map[string]profile{
	"de": {
		sectionMarker:  "{{Sprache|Deutsch}}",
		isEntryHeading: isGermanEntryHeading,
		inflectionTags: []string{
			"{{Wortart|Konjugierte Form",
			"{{Wortart|Deklinierte Form",
			"{{Wortart|Komparativ",
			"{{Wortart|Superlativ",
			"{{Wortart|Partizip I",
			"{{Wortart|Partizip II",
		},
		baseFormRefs: []refPattern{
			{template: "Grundformverweis Konj", argIndex: 0},
			{template: "Grundformverweis Dekl", argIndex: 0},
			{template: "Grundformverweis Komp", argIndex: 0},
			{template: "Grundformverweis", argIndex: 0},
		},
	},
	"en": {
		sectionMarker:  "==English==",
		isEntryHeading: isEnglishEntryHeading,
		inflectionTags: []string{
			"{{head|en|noun form",
			"{{head|en|verb form",
			"{{head|en|adjective form",
			"{{head|en|comparative form",
			"{{head|en|superlative form",
		},
		// The language code is positional argument 0, so the base form
		// sits at index 1 in every English reference template.
		baseFormRefs: []refPattern{
			{template: "plural of", argIndex: 1},
			{template: "past tense of", argIndex: 1},
			{template: "present participle of", argIndex: 1},
			{template: "inflection of", argIndex: 1},
		},
	},
}

// profileFor returns the markup profile for a base language code.
func profileFor(baseLang string) (profile, bool) {
	p, ok := profiles[baseLang]
	return p, ok
}

func isHeading(line string, depth int) bool {
	t := strings.TrimSpace(line)
	prefix := strings.Repeat("=", depth)
	return strings.HasPrefix(t, prefix) && !strings.HasPrefix(t, prefix+"=")
}

// German entries open with a Wortart heading, e.g.
// "=== {{Wortart|Konjugierte Form|Deutsch}} ===".
func isGermanEntryHeading(line string) bool {
	return isHeading(line, 3) && strings.Contains(line, "{{Wortart")
}

// englishPOSHeadings are the part-of-speech headings that open an entry
// block on the English edition. Pages with multiple etymologies nest them
// one level deeper, so both depths are accepted.
var englishPOSHeadings = map[string]struct{}{
	"Noun": {}, "Verb": {}, "Adjective": {}, "Adverb": {},
	"Pronoun": {}, "Preposition": {}, "Conjunction": {},
	"Interjection": {}, "Determiner": {}, "Numeral": {}, "Article": {},
	"Participle": {},
}

func isEnglishEntryHeading(line string) bool {
	if !isHeading(line, 3) && !isHeading(line, 4) {
		return false
	}
	name := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "="))
	_, ok := englishPOSHeadings[name]
	return ok
}

// languageSection isolates the slice of wikitext belonging to the
// profile's language. Pages hold entries for many languages; everything
// from the matching level-2 heading to the next one is ours.
func (p profile) languageSection(wikitext string) (string, bool) {
	lines := strings.Split(wikitext, "\n")
	start := -1
	for i, line := range lines {
		if !isHeading(line, 2) {
			continue
		}
		if start >= 0 {
			return strings.Join(lines[start:i], "\n"), true
		}
		if strings.Contains(line, p.sectionMarker) {
			start = i + 1
		}
	}
	if start >= 0 {
		return strings.Join(lines[start:], "\n"), true
	}
	return "", false
}

// firstBlock returns the first entry block of a language section. Later
// blocks belong to homographs and must not influence resolution.
func (p profile) firstBlock(section string) string {
	lines := strings.Split(section, "\n")
	start := -1
	for i, line := range lines {
		if !p.isEntryHeading(line) {
			continue
		}
		if start >= 0 {
			return strings.Join(lines[start:i], "\n")
		}
		start = i
	}
	if start < 0 {
		return section
	}
	return strings.Join(lines[start:], "\n")
}

// hasInflectionTag reports whether the block is marked as an inflected form.
func (p profile) hasInflectionTag(block string) bool {
	for _, tag := range p.inflectionTags {
		if strings.Contains(block, tag) {
			return true
		}
	}
	return false
}

// baseForm scans the block for the profile's reference templates in order
// and returns the base form named by the first match.
func (p profile) baseForm(block string) (string, bool) {
	for _, ref := range p.baseFormRefs {
		if base, ok := extractRef(block, ref); ok {
			return base, true
		}
	}
	return "", false
}

// extractRef finds "{{<template>|...}}" in the block and returns the
// positional argument at ref.argIndex. Named arguments (key=value) and the
// template name itself do not count toward the index.
func extractRef(block string, ref refPattern) (string, bool) {
	search := block
	for {
		idx := strings.Index(search, "{{"+ref.template)
		if idx < 0 {
			return "", false
		}
		rest := search[idx+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return "", false
		}
		inner := rest[:end]
		search = rest[end:]

		parts := strings.Split(inner, "|")
		if strings.TrimSpace(parts[0]) != ref.template {
			continue
		}

		var positional []string
		for _, part := range parts[1:] {
			if strings.Contains(part, "=") {
				continue
			}
			positional = append(positional, strings.TrimSpace(part))
		}
		if ref.argIndex >= len(positional) {
			continue
		}

		base := cleanBaseForm(positional[ref.argIndex])
		if base == "" {
			continue
		}
		return base, true
	}
}

// cleanBaseForm strips wiki-link brackets and rejects values that still
// look like markup rather than a plain word.
func cleanBaseForm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[[")
	s = strings.TrimSuffix(s, "]]")
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "{}[]|=") {
		return ""
	}
	return s
}
