package aoa

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/phraselevel/internal/config"
	"github.com/heartmarshall/phraselevel/internal/domain"
	"github.com/heartmarshall/phraselevel/internal/store"
)

// minCSVBytes guards against error pages and truncated downloads; the real
// norms dataset is far larger.
const minCSVBytes = 10000

type normsStore interface {
	Put(ctx context.Context, bucket, key, value string) error
	Count(ctx context.Context, bucket string) (int64, error)
}

// Builder populates the AoA norms bucket from the published Glasgow Norms
// dataset (Scott et al. 2019, CC BY 4.0): one rating per English word.
type Builder struct {
	log        *slog.Logger
	url        string
	httpClient *http.Client
	store      normsStore
}

// NewBuilder creates a norms builder from config.
func NewBuilder(cfg config.NormsConfig, kv normsStore, logger *slog.Logger) *Builder {
	return &Builder{
		log:        logger.With("service", "norms"),
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		store:      kv,
	}
}

// Ensure verifies the norms bucket is populated, building it on first use.
// An empty bucket that cannot be built is fatal: no analysis can run
// without AoA data, so the error wraps domain.ErrStoreUnavailable.
func (b *Builder) Ensure(ctx context.Context) error {
	n, err := b.store.Count(ctx, store.BucketAoA)
	if err != nil {
		return fmt.Errorf("%w: count norms: %v", domain.ErrStoreUnavailable, err)
	}
	if n > 0 {
		return nil
	}

	b.log.InfoContext(ctx, "aoa norms missing, building from dataset")
	if err := b.Build(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Build downloads the norms dataset and writes one record per word,
// overwriting any previous build.
func (b *Builder) Build(ctx context.Context) error {
	data, err := b.download(ctx)
	if err != nil {
		return err
	}

	count, err := b.importCSV(ctx, data)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("norms: dataset yielded no usable words")
	}

	b.log.InfoContext(ctx, "aoa norms built", slog.Int("words", count))
	return nil
}

// Count reports how many norms records the store holds.
func (b *Builder) Count(ctx context.Context) (int64, error) {
	return b.store.Count(ctx, store.BucketAoA)
}

func (b *Builder) download(ctx context.Context) ([]byte, error) {
	b.log.InfoContext(ctx, "downloading aoa norms dataset", slog.String("url", b.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, fmt.Errorf("norms: create request: %w", err)
	}
	// The publisher's CDN rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("norms: download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("norms: download: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("norms: read body: %w", err)
	}
	if len(data) <= minCSVBytes {
		return nil, fmt.Errorf("norms: downloaded %d bytes, does not look like the dataset", len(data))
	}
	return data, nil
}

// importCSV parses the dataset and stores every single-token word with a
// numeric rating, keyed by the lower-cased word.
func (b *Builder) importCSV(ctx context.Context, data []byte) (int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("norms: read csv header: %w", err)
	}

	wordCols := columnIndexes(header, "Words", "Word", "word")
	ratingCols := columnIndexes(header, "AOA", "AoA", "aoa", "Rating.Mean")
	if len(wordCols) == 0 || len(ratingCols) == 0 {
		return 0, fmt.Errorf("norms: csv header has no word/rating columns: %v", header)
	}

	count := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("norms: read csv row: %w", err)
		}

		word := strings.TrimSpace(fieldValue(rec, wordCols))
		if word == "" || strings.Contains(word, " ") {
			continue
		}

		rating, err := strconv.ParseFloat(strings.TrimSpace(fieldValue(rec, ratingCols)), 64)
		if err != nil {
			continue
		}

		key := domain.NormalizeWord(word)
		value := strconv.FormatFloat(rating, 'g', -1, 64)
		if err := b.store.Put(ctx, store.BucketAoA, key, value); err != nil {
			return 0, fmt.Errorf("norms: store %q: %w", key, err)
		}
		count++
	}
	return count, nil
}

// columnIndexes maps candidate header names, in priority order, to column
// positions. A name repeated in the header resolves to its last occurrence.
func columnIndexes(header []string, names ...string) []int {
	var out []int
	for _, name := range names {
		idx := -1
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				idx = i
			}
		}
		if idx >= 0 {
			out = append(out, idx)
		}
	}
	return out
}

// fieldValue returns the first non-empty field among the given columns.
func fieldValue(rec []string, cols []int) string {
	for _, i := range cols {
		if i < len(rec) && rec[i] != "" {
			return rec[i]
		}
	}
	return ""
}
