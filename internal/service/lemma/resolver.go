package lemma

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/phraselevel/internal/domain"
	"github.com/heartmarshall/phraselevel/internal/store"
)

type markupProvider interface {
	FetchWikitext(ctx context.Context, lang, word string) (string, error)
}

type cache interface {
	Get(ctx context.Context, bucket, key string) (string, bool, error)
	Put(ctx context.Context, bucket, key, value string) error
}

// Resolver maps surface word forms to their dictionary base form using
// Wiktionary markup, caching every answer so each surface form is fetched
// at most once per store lifetime.
type Resolver struct {
	log      *slog.Logger
	provider markupProvider
	cache    cache
}

// NewResolver creates a new lemma resolver.
func NewResolver(logger *slog.Logger, provider markupProvider, cache cache) *Resolver {
	return &Resolver{
		log:      logger.With("service", "lemma"),
		provider: provider,
		cache:    cache,
	}
}

// Resolve returns the base form of word. Lookup failures never surface:
// any fetch or parse problem degrades to the word itself, and the returned
// outcome reports which path produced the answer. Every non-cached result
// is written back to the cache, fallbacks included, so a flaky page is not
// refetched on every call.
func (r *Resolver) Resolve(ctx context.Context, lang, word string) (string, domain.LookupOutcome) {
	// 1. Languages without a markup profile keep the surface form. No
	//    fetch is attempted and nothing is cached.
	prof, ok := profileFor(domain.BaseLang(lang))
	if !ok {
		return word, domain.OutcomeFallback
	}

	// 2. Cache check. A hit may map the word to itself, meaning an
	//    earlier resolution decided it is already a base form.
	key := store.CacheKey(lang, word)
	cached, hit, err := r.cache.Get(ctx, store.BucketLemmas, key)
	if err != nil {
		r.log.WarnContext(ctx, "lemma cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	} else if hit {
		return cached, domain.OutcomeCached
	}

	// 3. Fetch markup for the exact surface form. Page titles are case-
	//    sensitive, so the word goes out untouched.
	wikitext, err := r.provider.FetchWikitext(ctx, domain.BaseLang(lang), word)
	if err != nil {
		r.log.WarnContext(ctx, "lexical fetch failed, keeping surface form",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		r.put(ctx, key, word)
		return word, domain.OutcomeFallback
	}

	// 4. No page for this title: the word is its own base form as far as
	//    the reference knows.
	if wikitext == "" {
		r.put(ctx, key, word)
		return word, domain.OutcomePrimary
	}

	// 5. Isolate the language's section. A page that exists but has no
	//    section for this language gives us nothing to resolve against.
	section, ok := prof.languageSection(wikitext)
	if !ok {
		r.put(ctx, key, word)
		return word, domain.OutcomePrimary
	}

	// 6. Only the first entry block counts. No inflected-form tag there
	//    means the word is already a base form.
	block := prof.firstBlock(section)
	if !prof.hasInflectionTag(block) {
		r.put(ctx, key, word)
		return word, domain.OutcomePrimary
	}

	// 7. The block is an inflected form: follow its base-form reference.
	base, found := prof.baseForm(block)
	if !found {
		r.log.WarnContext(ctx, "inflected form without base-form reference",
			slog.String("word", word),
		)
		r.put(ctx, key, word)
		return word, domain.OutcomeFallback
	}

	r.log.DebugContext(ctx, "lemma resolved",
		slog.String("word", word),
		slog.String("lemma", base),
	)
	r.put(ctx, key, base)
	return base, domain.OutcomePrimary
}

func (r *Resolver) put(ctx context.Context, key, lemma string) {
	if err := r.cache.Put(ctx, store.BucketLemmas, key, lemma); err != nil {
		r.log.WarnContext(ctx, "lemma cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
