package aoa

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/phraselevel/internal/domain"
	"github.com/heartmarshall/phraselevel/internal/store"
)

// FallbackAoA is the adult-acquired default, in years, for words absent
// from the norms. Scores stay computable for any vocabulary because of it.
const FallbackAoA = 16.0

type translator interface {
	Translate(ctx context.Context, word, sourceLang string) (string, error)
}

type kvStore interface {
	Get(ctx context.Context, bucket, key string) (string, bool, error)
	Put(ctx context.Context, bucket, key, value string) error
}

// Mapper resolves a word in any supported language to an English AoA
// rating: translate to English when needed, then look the result up in the
// norms bucket. Translations are cached so each word hits the translation
// service at most once per store lifetime.
type Mapper struct {
	log        *slog.Logger
	translator translator
	store      kvStore
}

// NewMapper creates a new cross-lingual AoA mapper.
func NewMapper(logger *slog.Logger, translator translator, kv kvStore) *Mapper {
	return &Mapper{
		log:        logger.With("service", "aoa"),
		translator: translator,
		store:      kv,
	}
}

// TranslateToEnglish returns the lower-cased English rendering of word.
// English input short-circuits without any lookup. Translation failures
// degrade to the lower-cased word itself, and every non-cached result is
// written back, fallbacks included.
func (m *Mapper) TranslateToEnglish(ctx context.Context, word, sourceLang string) (string, domain.LookupOutcome) {
	base := domain.BaseLang(sourceLang)
	if base == "en" {
		return domain.NormalizeWord(word), domain.OutcomePrimary
	}

	key := store.CacheKey(sourceLang, word)
	cached, hit, err := m.store.Get(ctx, store.BucketTranslations, key)
	if err != nil {
		m.log.WarnContext(ctx, "translation cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	} else if hit {
		return cached, domain.OutcomeCached
	}

	translated, err := m.translator.Translate(ctx, word, base)
	if err != nil {
		m.log.WarnContext(ctx, "translation failed, keeping source word",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		result := domain.NormalizeWord(word)
		m.put(ctx, key, result)
		return result, domain.OutcomeFallback
	}

	// A translation identical to the input (cognates, proper nouns, or a
	// service echoing its input) carries no new information.
	result := domain.NormalizeWord(word)
	if translated != "" && strings.ToLower(translated) != strings.ToLower(word) {
		result = strings.ToLower(translated)
	}

	m.put(ctx, key, result)
	return result, domain.OutcomePrimary
}

// AoA returns the Age-of-Acquisition rating in years for an English word.
// The boolean reports whether the norms knew the word; when false the
// value is the FallbackAoA constant.
func (m *Mapper) AoA(ctx context.Context, word string) (float64, bool) {
	normalized := domain.NormalizeWord(word)

	if v, ok := m.lookup(ctx, normalized); ok {
		return v, true
	}

	// Retry without punctuation, e.g. "don't" -> "dont".
	stripped := domain.StripNonAlnum(normalized)
	if stripped != "" && stripped != normalized {
		if v, ok := m.lookup(ctx, stripped); ok {
			return v, true
		}
	}

	m.log.DebugContext(ctx, "aoa not in norms, using adult default", slog.String("word", word))
	return FallbackAoA, false
}

func (m *Mapper) lookup(ctx context.Context, key string) (float64, bool) {
	raw, hit, err := m.store.Get(ctx, store.BucketAoA, key)
	if err != nil {
		m.log.WarnContext(ctx, "aoa store read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return 0, false
	}
	if !hit {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.log.WarnContext(ctx, "aoa store holds non-numeric rating",
			slog.String("key", key),
			slog.String("value", raw),
		)
		return 0, false
	}
	return v, true
}

func (m *Mapper) put(ctx context.Context, key, value string) {
	if err := m.store.Put(ctx, store.BucketTranslations, key, value); err != nil {
		m.log.WarnContext(ctx, "translation cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
