package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/phraselevel/internal/domain"
)

const reportWidth = 60

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sectionHeading centers the title in a dash-padded line.
func sectionHeading(title string) string {
	pad := reportWidth - len(title)
	if pad <= 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat("-", left) + title + strings.Repeat("-", pad-left)
}

// printReport renders the full human-readable breakdown of one analysis.
func printReport(w io.Writer, res domain.PhraseAnalysis) {
	if res.Err != "" {
		fmt.Fprintf(w, "Error: %s\n", res.Err)
		return
	}

	banner := strings.Repeat("=", reportWidth)

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintln(w, "Phrase Difficulty Analysis")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Phrase: %s\n", res.Phrase)
	fmt.Fprintf(w, "Language: %s\n", res.Language)

	fmt.Fprintf(w, "\n%s\n", sectionHeading("Basic Metrics"))
	fmt.Fprintf(w, "  Words: %d\n", res.WordCount)
	fmt.Fprintf(w, "  Characters: %d\n", res.CharCount)
	fmt.Fprintf(w, "  Total syllables: %d\n", res.TotalSyllables)
	fmt.Fprintf(w, "  Avg. syllables/word: %g\n", res.AvgSyllablesPerWord)

	fmt.Fprintf(w, "\n%s\n", sectionHeading("Per-Word Analysis"))
	for i, wd := range res.Words {
		fmt.Fprintf(w, "  Word %d: %s\n", i+1, wd.Word)
		if wd.Lemma != nil {
			fmt.Fprintf(w, "    Lemma: %s\n", *wd.Lemma)
		}
		if wd.EnglishGloss != nil && *wd.EnglishGloss != strings.ToLower(wd.Word) {
			fmt.Fprintf(w, "    -> English: %s\n", *wd.EnglishGloss)
		}
		fmt.Fprintf(w, "    Syllables: %d\n", wd.Syllables)
		fmt.Fprintf(w, "    AoA: %.1f years\n", wd.AoA)
		if wd.PhonemeComplexity != nil {
			fmt.Fprintf(w, "    Phoneme complexity: %.3f\n", *wd.PhonemeComplexity)
		}
		if wd.IPA != nil {
			fmt.Fprintf(w, "    IPA: %s\n", *wd.IPA)
		}
	}

	fmt.Fprintf(w, "\n%s\n", sectionHeading("Aggregate Scores"))
	fmt.Fprintf(w, "  Average AoA: %g years\n", res.AvgAoA)
	fmt.Fprintf(w, "  Data available: %d/%d words\n", res.AoAKnownWords, res.WordCount)
	fmt.Fprintf(w, "  Avg. phoneme complexity: %.3f (0=simple, 1=complex)\n", res.PhonemeComplexity)

	fmt.Fprintf(w, "\n%s\n", sectionHeading("Difficulty Assessment"))
	fmt.Fprintf(w, "  Score: %.1f/100\n", res.Score)
	fmt.Fprintf(w, "  Level: %s\n", res.Level)
	fmt.Fprintf(w, "  Numeric level: %d/1000\n", res.NumericLevel)
	fmt.Fprintf(w, "%s\n\n", banner)
}
