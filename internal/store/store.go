package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/phraselevel/internal/config"
	"github.com/heartmarshall/phraselevel/internal/domain"
)

// Buckets. Lemma and translation caches key by language + word (see CacheKey);
// the AoA norms store keys by the plain lower-cased English word.
const (
	BucketLemmas       = "lemmas"
	BucketTranslations = "translations"
	BucketAoA          = "aoa"
)

// KV is the persistent key-value store behind the lemma cache, the
// translation cache, and the AoA norms store. Writes are append-only in
// practice: concurrent writers racing on one key compute the same value, so
// a last-write-wins upsert is safe.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, bucket, key string) (string, bool, error)
	// Put stores the value, overwriting any previous one.
	Put(ctx context.Context, bucket, key, value string) error
	// Count returns the number of keys in a bucket.
	Count(ctx context.Context, bucket string) (int64, error)
	Close() error
}

// CacheKey builds the composite key for the per-language caches.
func CacheKey(lang, word string) string {
	return domain.BaseLang(lang) + "/" + domain.NormalizeWord(word)
}

// Open creates the KV backend selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (KV, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		path := cfg.Path
		if path == "" {
			var err error
			path, err = DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("store: resolve default path: %w", err)
			}
		}
		return OpenSQLite(path, log)
	case "postgres":
		return OpenPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}

// DefaultDBPath resolves the SQLite file path:
// $XDG_DATA_HOME/phraselevel/phraselevel.db, falling back to
// ~/.local/share/phraselevel/phraselevel.db.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "phraselevel", "phraselevel.db"), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
