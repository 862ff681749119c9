package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/phraselevel/internal/adapter/provider/translate"
	"github.com/heartmarshall/phraselevel/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/phraselevel/internal/config"
	"github.com/heartmarshall/phraselevel/internal/phoneme"
	"github.com/heartmarshall/phraselevel/internal/service/analyze"
	"github.com/heartmarshall/phraselevel/internal/service/aoa"
	"github.com/heartmarshall/phraselevel/internal/service/batch"
	"github.com/heartmarshall/phraselevel/internal/service/lemma"
	"github.com/heartmarshall/phraselevel/internal/store"
	"github.com/heartmarshall/phraselevel/internal/translit"
)

// App bundles the wired analysis pipeline for the CLI commands.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Store    store.KV
	Norms    *aoa.Builder
	Analyzer *analyze.Analyzer
	Batch    *batch.Runner
}

// New wires the full pipeline: store, HTTP providers, feature table, and
// services. It does not touch the norms store; callers choose between
// Builder.Ensure (build once if empty) and a forced rebuild.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	kv, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("app: open store: %w", err)
	}

	table, err := phoneme.LoadTable()
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("app: load phoneme features: %w", err)
	}

	lemmas := lemma.NewResolver(logger, wiktionary.NewProvider(cfg.Lexical, logger), kv)
	mapper := aoa.NewMapper(logger, translate.NewProvider(cfg.Translate, logger), kv)
	analyzer := analyze.NewAnalyzer(logger, lemmas, mapper, translit.New(), table)

	return &App{
		Config:   cfg,
		Log:      logger,
		Store:    kv,
		Norms:    aoa.NewBuilder(cfg.Norms, kv, logger),
		Analyzer: analyzer,
		Batch:    batch.NewRunnerWithLimit(logger, analyzer, cfg.Batch.Workers),
	}, nil
}

// Close releases the store connection.
func (a *App) Close() error {
	return a.Store.Close()
}
