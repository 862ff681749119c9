package analyze

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/phraselevel/internal/domain"
	"github.com/heartmarshall/phraselevel/pkg/ctxutil"
)

type lemmaResolver interface {
	Resolve(ctx context.Context, lang, word string) (string, domain.LookupOutcome)
}

type aoaMapper interface {
	TranslateToEnglish(ctx context.Context, word, sourceLang string) (string, domain.LookupOutcome)
	AoA(ctx context.Context, word string) (float64, bool)
}

type transliterator interface {
	ToIPA(word, lang string) (string, bool)
}

type complexityScorer interface {
	Complexity(ipa string) float64
}

// Analyzer drives the full difficulty pipeline for one phrase: per word it
// resolves the lemma, maps it to an English AoA rating, estimates syllables
// and phoneme complexity, then composes the weighted score.
type Analyzer struct {
	log      *slog.Logger
	lemmas   lemmaResolver
	aoa      aoaMapper
	translit transliterator
	phonemes complexityScorer
}

// NewAnalyzer creates a new phrase analyzer.
func NewAnalyzer(
	logger *slog.Logger,
	lemmas lemmaResolver,
	aoa aoaMapper,
	translit transliterator,
	phonemes complexityScorer,
) *Analyzer {
	return &Analyzer{
		log:      logger.With("service", "analyze"),
		lemmas:   lemmas,
		aoa:      aoa,
		translit: translit,
		phonemes: phonemes,
	}
}

// Analyze scores one phrase. It never fails for non-empty input: every
// per-word lookup degrades to its documented fallback, so a score is always
// produced. An empty phrase yields a zero-score record with Err set.
func (a *Analyzer) Analyze(ctx context.Context, phrase, language string) domain.PhraseAnalysis {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return domain.PhraseAnalysis{
			Phrase:   phrase,
			Language: language,
			Err:      "Empty phrase",
		}
	}

	isEnglish := domain.BaseLang(language) == "en"

	var (
		charCount      int
		totalSyllables int
		aoaSum         float64
		aoaKnown       int
		degraded       int
		details        = make([]domain.WordAnalysis, 0, len(words))
	)

	for _, word := range words {
		lemma, lemmaOutcome := a.lemmas.Resolve(ctx, language, word)

		// English skips translation entirely; other languages translate
		// the lemma, not the surface form, so inflection noise does not
		// leak into the norms lookup.
		translationInput := lemma
		if isEnglish {
			translationInput = word
		}
		english, translateOutcome := a.aoa.TranslateToEnglish(ctx, translationInput, language)

		aoaValue, known := a.aoa.AoA(ctx, english)
		syllables := CountSyllables(word)

		wa := domain.WordAnalysis{
			Word:      word,
			AoA:       aoaValue,
			AoAKnown:  known,
			Syllables: syllables,
		}
		if lemma != word {
			wa.Lemma = &lemma
		}
		if !isEnglish {
			wa.EnglishGloss = &english
		}
		if ipa, ok := a.translit.ToIPA(word, language); ok {
			complexity := a.phonemes.Complexity(ipa)
			wa.IPA = &ipa
			wa.PhonemeComplexity = &complexity
		}
		details = append(details, wa)

		charCount += utf8.RuneCountInString(word)
		totalSyllables += syllables
		aoaSum += aoaValue
		if known {
			aoaKnown++
		}
		if lemmaOutcome == domain.OutcomeFallback || translateOutcome == domain.OutcomeFallback {
			degraded++
		}
	}

	wordCount := len(words)
	avgWordLength := float64(charCount) / float64(wordCount)
	avgAoA := aoaSum / float64(wordCount)
	syllableDensity := float64(totalSyllables) / float64(wordCount)
	phonemeComplexity := aggregateComplexity(details)

	components := scoreComponents(avgWordLength, wordCount, avgAoA, syllableDensity, phonemeComplexity)
	rawScore := components.Total()
	score := round1(rawScore)

	logAttrs := []any{
		slog.String("language", language),
		slog.Int("words", wordCount),
		slog.Float64("score", score),
		slog.Int("degraded_lookups", degraded),
	}
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		logAttrs = append(logAttrs, slog.String("run_id", runID.String()))
	}
	if taskID, ok := ctxutil.TaskIDFromCtx(ctx); ok {
		logAttrs = append(logAttrs, slog.Int("task_id", taskID))
	}
	a.log.DebugContext(ctx, "phrase analyzed", logAttrs...)

	return domain.PhraseAnalysis{
		Phrase:              phrase,
		Language:            language,
		WordCount:           wordCount,
		CharCount:           charCount,
		AvgWordLength:       round2(avgWordLength),
		TotalSyllables:      totalSyllables,
		AvgSyllablesPerWord: round2(syllableDensity),
		AvgAoA:              round2(avgAoA),
		AoAKnownWords:       aoaKnown,
		PhonemeComplexity:   phonemeComplexity,
		Score:               score,
		Level:               difficultyLevel(rawScore),
		NumericLevel:        ScoreToLevel(score, language),
		Components:          components,
		Words:               details,
	}
}

// aggregateComplexity averages the per-word complexity values that are both
// defined and strictly positive. When no word qualifies, the adult default
// keeps the phoneme component computable.
func aggregateComplexity(details []domain.WordAnalysis) float64 {
	sum := 0.0
	n := 0
	for _, wa := range details {
		if wa.PhonemeComplexity != nil && *wa.PhonemeComplexity > 0 {
			sum += *wa.PhonemeComplexity
			n++
		}
	}
	if n == 0 {
		return fallbackPhonemeComplexity
	}
	return sum / float64(n)
}
