// Package batch runs phrase analyses concurrently over a worker pool and
// summarizes the resulting score distribution.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phraselevel/internal/domain"
	"github.com/heartmarshall/phraselevel/pkg/ctxutil"
)

// defaultWorkerLimit caps the pool; actual workers never exceed the number
// of phrases.
const defaultWorkerLimit = 8

type analyzer interface {
	Analyze(ctx context.Context, phrase, language string) domain.PhraseAnalysis
}

// Runner fans phrases out over an errgroup pool. Analyses are independent,
// so results land in input order without any coordination beyond the index.
type Runner struct {
	log      *slog.Logger
	analyzer analyzer
	limit    int
}

// NewRunner creates a runner with the default worker limit.
func NewRunner(logger *slog.Logger, a analyzer) *Runner {
	return NewRunnerWithLimit(logger, a, defaultWorkerLimit)
}

// NewRunnerWithLimit creates a runner with an explicit worker limit.
func NewRunnerWithLimit(logger *slog.Logger, a analyzer, limit int) *Runner {
	if limit < 1 {
		limit = defaultWorkerLimit
	}
	return &Runner{
		log:      logger.With("service", "batch"),
		analyzer: a,
		limit:    limit,
	}
}

// Run analyzes all phrases in the given language and returns the results in
// input order together with a score summary. The only error source is
// context cancellation; per-phrase lookup failures are absorbed by the
// analyzer's fallbacks.
func (r *Runner) Run(ctx context.Context, language string, phrases []string) ([]domain.PhraseAnalysis, Summary, error) {
	if len(phrases) == 0 {
		return nil, Summary{}, nil
	}

	workers := r.limit
	if len(phrases) < workers {
		workers = len(phrases)
	}

	runID := uuid.New()
	log := r.log.With("run_id", runID)
	log.InfoContext(ctx, "starting batch analysis",
		"language", language,
		"phrases", len(phrases),
		"workers", workers,
	)

	results := make([]domain.PhraseAnalysis, len(phrases))

	g, gctx := errgroup.WithContext(ctxutil.WithRunID(ctx, runID))
	g.SetLimit(workers)
	for i, phrase := range phrases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.analyzer.Analyze(ctxutil.WithTaskID(gctx, i), phrase, language)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("batch analysis: %w", err)
	}

	summary := Summarize(results)
	log.InfoContext(ctx, "batch analysis finished",
		"min", summary.Min,
		"max", summary.Max,
		"p5", summary.P5,
		"p95", summary.P95,
	)
	return results, summary, nil
}

// Summary describes the score distribution of one batch run. P5 and P95 are
// the calibration candidates: feeding them back as a language's score range
// maps the middle 90% of a phrase set onto the level scale.
type Summary struct {
	Phrases int     `json:"phrases"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	P5      float64 `json:"p5"`
	P95     float64 `json:"p95"`
	Mean    float64 `json:"mean"`
}

// Summarize computes the distribution over successful analyses. Rejected
// inputs (Err set) are excluded. Percentile indexes truncate, so tiny
// batches degenerate toward Min and Max.
func Summarize(results []domain.PhraseAnalysis) Summary {
	scores := make([]float64, 0, len(results))
	sum := 0.0
	for _, res := range results {
		if res.Err != "" {
			continue
		}
		scores = append(scores, res.Score)
		sum += res.Score
	}
	if len(scores) == 0 {
		return Summary{}
	}
	sort.Float64s(scores)

	n := len(scores)
	return Summary{
		Phrases: n,
		Min:     scores[0],
		Max:     scores[n-1],
		P5:      scores[int(float64(n)*0.05)],
		P95:     scores[int(float64(n)*0.95)],
		Mean:    sum / float64(n),
	}
}
