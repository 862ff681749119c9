package analyze

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phraselevel/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Manual mocks (moq-style with func fields) ---

type mockLemmaResolver struct {
	ResolveFunc func(ctx context.Context, lang, word string) (string, domain.LookupOutcome)
}

func (m *mockLemmaResolver) Resolve(ctx context.Context, lang, word string) (string, domain.LookupOutcome) {
	return m.ResolveFunc(ctx, lang, word)
}

type mockAoAMapper struct {
	TranslateToEnglishFunc func(ctx context.Context, word, sourceLang string) (string, domain.LookupOutcome)
	AoAFunc                func(ctx context.Context, word string) (float64, bool)
}

func (m *mockAoAMapper) TranslateToEnglish(ctx context.Context, word, sourceLang string) (string, domain.LookupOutcome) {
	return m.TranslateToEnglishFunc(ctx, word, sourceLang)
}

func (m *mockAoAMapper) AoA(ctx context.Context, word string) (float64, bool) {
	return m.AoAFunc(ctx, word)
}

type mockTransliterator struct {
	ToIPAFunc func(word, lang string) (string, bool)
}

func (m *mockTransliterator) ToIPA(word, lang string) (string, bool) {
	return m.ToIPAFunc(word, lang)
}

type mockComplexityScorer struct {
	ComplexityFunc func(ipa string) float64
}

func (m *mockComplexityScorer) Complexity(ipa string) float64 {
	return m.ComplexityFunc(ipa)
}

type pipelineMocks struct {
	lemmas   *mockLemmaResolver
	aoa      *mockAoAMapper
	translit *mockTransliterator
	phonemes *mockComplexityScorer
}

func (m *pipelineMocks) analyzer() *Analyzer {
	return NewAnalyzer(newTestLogger(), m.lemmas, m.aoa, m.translit, m.phonemes)
}

// passthroughPipeline wires mocks where every stage degrades: no lemma,
// no gloss, no norms entry, no IPA.
func passthroughPipeline() *pipelineMocks {
	return &pipelineMocks{
		lemmas: &mockLemmaResolver{
			ResolveFunc: func(_ context.Context, _, word string) (string, domain.LookupOutcome) {
				return word, domain.OutcomeFallback
			},
		},
		aoa: &mockAoAMapper{
			TranslateToEnglishFunc: func(_ context.Context, word, _ string) (string, domain.LookupOutcome) {
				return strings.ToLower(word), domain.OutcomeFallback
			},
			AoAFunc: func(_ context.Context, _ string) (float64, bool) {
				return 16.0, false
			},
		},
		translit: &mockTransliterator{
			ToIPAFunc: func(_, _ string) (string, bool) { return "", false },
		},
		phonemes: &mockComplexityScorer{
			ComplexityFunc: func(_ string) float64 { return 0 },
		},
	}
}

// germanPipeline mimics the real adapters for a tiny German vocabulary,
// with fixed values so the composite score is exactly predictable.
func germanPipeline() *pipelineMocks {
	lemmaOf := map[string]string{"läuft": "laufen"}
	glossOf := map[string]string{"der": "the", "hund": "dog", "laufen": "run"}
	aoaOf := map[string]float64{"the": 2.5, "dog": 5.28, "run": 4.64}
	ipaOf := map[string]string{"Der": "deːɐ", "Hund": "hʊnt", "läuft": "lɔʏft"}
	complexityOf := map[string]float64{"deːɐ": 0.8, "hʊnt": 0.9, "lɔʏft": 0.85}

	m := passthroughPipeline()
	m.lemmas.ResolveFunc = func(_ context.Context, _, word string) (string, domain.LookupOutcome) {
		if base, ok := lemmaOf[word]; ok {
			return base, domain.OutcomePrimary
		}
		return word, domain.OutcomePrimary
	}
	m.aoa.TranslateToEnglishFunc = func(_ context.Context, word, _ string) (string, domain.LookupOutcome) {
		if gloss, ok := glossOf[strings.ToLower(word)]; ok {
			return gloss, domain.OutcomePrimary
		}
		return strings.ToLower(word), domain.OutcomeFallback
	}
	m.aoa.AoAFunc = func(_ context.Context, word string) (float64, bool) {
		if v, ok := aoaOf[word]; ok {
			return v, true
		}
		return 16.0, false
	}
	m.translit.ToIPAFunc = func(word, _ string) (string, bool) {
		ipa, ok := ipaOf[word]
		return ipa, ok
	}
	m.phonemes.ComplexityFunc = func(ipa string) float64 { return complexityOf[ipa] }
	return m
}

func TestAnalyzer_Analyze_EmptyPhrase(t *testing.T) {
	t.Parallel()

	analyzer := passthroughPipeline().analyzer()

	for _, phrase := range []string{"", "   ", " \t\n "} {
		got := analyzer.Analyze(context.Background(), phrase, "de-DE")

		assert.Equal(t, "Empty phrase", got.Err)
		assert.Equal(t, phrase, got.Phrase)
		assert.Equal(t, "de-DE", got.Language)
		assert.Zero(t, got.Score)
		assert.Zero(t, got.WordCount)
		assert.Empty(t, got.Words)
		assert.Empty(t, got.Level)
	}
}

func TestAnalyzer_Analyze_GermanPhrase(t *testing.T) {
	t.Parallel()

	analyzer := germanPipeline().analyzer()

	got := analyzer.Analyze(context.Background(), "Der Hund läuft", "de-DE")

	require.Empty(t, got.Err)
	assert.Equal(t, "Der Hund läuft", got.Phrase)
	assert.Equal(t, "de-DE", got.Language)

	assert.Equal(t, 3, got.WordCount)
	assert.Equal(t, 12, got.CharCount)
	assert.Equal(t, 4.0, got.AvgWordLength)
	assert.Equal(t, 3, got.TotalSyllables)
	assert.Equal(t, 1.0, got.AvgSyllablesPerWord)
	assert.InDelta(t, 4.14, got.AvgAoA, 1e-9)
	assert.Equal(t, 3, got.AoAKnownWords)
	assert.InDelta(t, 0.85, got.PhonemeComplexity, 1e-9)

	assert.InDelta(t, 6.6667, got.Components.Length, 1e-4)
	assert.InDelta(t, 3.0, got.Components.WordCount, 1e-9)
	assert.InDelta(t, 5.35, got.Components.AoA, 1e-9)
	assert.InDelta(t, 2.5, got.Components.Syllable, 1e-9)
	assert.InDelta(t, 12.75, got.Components.Phoneme, 1e-9)

	assert.InDelta(t, 30.3, got.Score, 1e-9)
	assert.Equal(t, domain.LevelEasy, got.Level)
	assert.Equal(t, 174, got.NumericLevel)
}

func TestAnalyzer_Analyze_WordDetails(t *testing.T) {
	t.Parallel()

	analyzer := germanPipeline().analyzer()

	got := analyzer.Analyze(context.Background(), "Der Hund läuft", "de-DE")
	require.Len(t, got.Words, 3)

	first := got.Words[0]
	assert.Equal(t, "Der", first.Word)
	assert.Nil(t, first.Lemma)
	require.NotNil(t, first.EnglishGloss)
	assert.Equal(t, "the", *first.EnglishGloss)
	assert.Equal(t, 2.5, first.AoA)
	assert.True(t, first.AoAKnown)
	assert.Equal(t, 1, first.Syllables)
	require.NotNil(t, first.IPA)
	assert.Equal(t, "deːɐ", *first.IPA)
	require.NotNil(t, first.PhonemeComplexity)
	assert.InDelta(t, 0.8, *first.PhonemeComplexity, 1e-9)

	last := got.Words[2]
	assert.Equal(t, "läuft", last.Word)
	require.NotNil(t, last.Lemma)
	assert.Equal(t, "laufen", *last.Lemma)
	require.NotNil(t, last.EnglishGloss)
	assert.Equal(t, "run", *last.EnglishGloss)
}

func TestAnalyzer_Analyze_TranslatesLemma(t *testing.T) {
	t.Parallel()

	m := germanPipeline()
	var translated []string
	inner := m.aoa.TranslateToEnglishFunc
	m.aoa.TranslateToEnglishFunc = func(ctx context.Context, word, sourceLang string) (string, domain.LookupOutcome) {
		translated = append(translated, word)
		return inner(ctx, word, sourceLang)
	}

	m.analyzer().Analyze(context.Background(), "läuft", "de-DE")

	assert.Equal(t, []string{"laufen"}, translated)
}

func TestAnalyzer_Analyze_EnglishKeepsSurfaceFormAndSkipsGloss(t *testing.T) {
	t.Parallel()

	m := passthroughPipeline()
	m.lemmas.ResolveFunc = func(_ context.Context, _, word string) (string, domain.LookupOutcome) {
		if word == "Dogs" {
			return "dog", domain.OutcomePrimary
		}
		return word, domain.OutcomePrimary
	}
	var translated []string
	m.aoa.TranslateToEnglishFunc = func(_ context.Context, word, _ string) (string, domain.LookupOutcome) {
		translated = append(translated, word)
		return strings.ToLower(word), domain.OutcomePrimary
	}

	got := m.analyzer().Analyze(context.Background(), "Dogs run", "en-GB")

	// English words go through AoA lookup as-is, not via the lemma.
	assert.Equal(t, []string{"Dogs", "run"}, translated)

	require.Len(t, got.Words, 2)
	assert.Nil(t, got.Words[0].EnglishGloss)
	assert.Nil(t, got.Words[1].EnglishGloss)
	require.NotNil(t, got.Words[0].Lemma)
	assert.Equal(t, "dog", *got.Words[0].Lemma)
	assert.Nil(t, got.Words[1].Lemma)
}

func TestAnalyzer_Analyze_PhonemeFallbackWhenNoIPA(t *testing.T) {
	t.Parallel()

	analyzer := passthroughPipeline().analyzer()

	got := analyzer.Analyze(context.Background(), "blorp zem", "de-DE")

	require.Len(t, got.Words, 2)
	assert.Nil(t, got.Words[0].IPA)
	assert.Nil(t, got.Words[0].PhonemeComplexity)
	assert.Equal(t, 0.75, got.PhonemeComplexity)
	assert.InDelta(t, 11.25, got.Components.Phoneme, 1e-9)
}

func TestAnalyzer_Analyze_ZeroComplexityExcludedFromAggregate(t *testing.T) {
	t.Parallel()

	m := passthroughPipeline()
	m.translit.ToIPAFunc = func(word, _ string) (string, bool) { return word, true }
	m.phonemes.ComplexityFunc = func(ipa string) float64 {
		if ipa == "hʊnt" {
			return 0.9
		}
		return 0
	}

	got := m.analyzer().Analyze(context.Background(), "zzz hʊnt", "de-DE")

	// The zero-scored word still records its value but only positive
	// values feed the aggregate.
	require.Len(t, got.Words, 2)
	require.NotNil(t, got.Words[0].PhonemeComplexity)
	assert.Zero(t, *got.Words[0].PhonemeComplexity)
	assert.InDelta(t, 0.9, got.PhonemeComplexity, 1e-9)

	// With no positive values at all, the adult fallback applies.
	m.phonemes.ComplexityFunc = func(_ string) float64 { return 0 }
	got = m.analyzer().Analyze(context.Background(), "zzz hʊnt", "de-DE")
	assert.Equal(t, 0.75, got.PhonemeComplexity)
}

func TestAnalyzer_Analyze_UnknownWordsUseAdultDefault(t *testing.T) {
	t.Parallel()

	analyzer := passthroughPipeline().analyzer()

	got := analyzer.Analyze(context.Background(), "blorp zem quux", "de-DE")

	assert.Equal(t, 16.0, got.AvgAoA)
	assert.Zero(t, got.AoAKnownWords)
	for _, w := range got.Words {
		assert.Equal(t, 16.0, w.AoA)
		assert.False(t, w.AoAKnown)
	}
}

func TestAnalyzer_Analyze_EnglishSamplePhrase(t *testing.T) {
	t.Parallel()

	analyzer := passthroughPipeline().analyzer()

	got := analyzer.Analyze(context.Background(), "The quick brown fox", "en-GB")

	require.Empty(t, got.Err)
	assert.Equal(t, 4, got.WordCount)
	assert.Contains(t, domain.Levels(), got.Level)
	assert.Positive(t, got.AvgAoA)
}

func TestAnalyzer_Analyze_Deterministic(t *testing.T) {
	t.Parallel()

	analyzer := germanPipeline().analyzer()

	first := analyzer.Analyze(context.Background(), "Der Hund läuft", "de-DE")
	second := analyzer.Analyze(context.Background(), "Der Hund läuft", "de-DE")

	assert.Equal(t, first, second)
}

func TestAnalyzer_Analyze_ScoreProperties(t *testing.T) {
	t.Parallel()

	analyzer := passthroughPipeline().analyzer()

	phrases := []string{
		"a",
		"Der Hund läuft schnell",
		"Die außergewöhnliche Geschwindigkeitsbegrenzung überraschte alle Verkehrsteilnehmer gestern",
		"one two three four five six seven eight nine ten eleven twelve",
	}
	for _, phrase := range phrases {
		got := analyzer.Analyze(context.Background(), phrase, "de-DE")

		assert.GreaterOrEqual(t, got.Score, 0.0, "phrase %q", phrase)
		assert.LessOrEqual(t, got.Score, 100.0, "phrase %q", phrase)
		// The published score is the rounded component sum.
		assert.InDelta(t, got.Components.Total(), got.Score, 0.051, "phrase %q", phrase)
		assert.Contains(t, domain.Levels(), got.Level, "phrase %q", phrase)
		assert.GreaterOrEqual(t, got.NumericLevel, 1, "phrase %q", phrase)
		assert.LessOrEqual(t, got.NumericLevel, 1000, "phrase %q", phrase)
	}
}
