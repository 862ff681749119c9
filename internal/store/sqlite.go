package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	bucket TEXT NOT NULL,
	key    TEXT NOT NULL,
	value  TEXT NOT NULL,
	PRIMARY KEY (bucket, key)
);`

// SQLite is the default embedded KV backend.
type SQLite struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens (creating if needed) the SQLite database at path,
// applies recommended pragmas, and ensures the kv table exists.
func OpenSQLite(path string, log *slog.Logger) (*SQLite, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("sqlite: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	log.Debug("sqlite store ready", slog.String("path", path))

	return &SQLite{db: db, log: log.With("component", "store")}, nil
}

func (s *SQLite) Get(ctx context.Context, bucket, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE bucket = ? AND key = ?`, bucket, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite: get %s/%s: %w", bucket, key, err)
	}
	return value, true, nil
}

func (s *SQLite) Put(ctx context.Context, bucket, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (bucket, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (bucket, key) DO UPDATE SET value = excluded.value`,
		bucket, key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlite: put %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *SQLite) Count(ctx context.Context, bucket string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM kv WHERE bucket = ?`, bucket,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sqlite: count %s: %w", bucket, err)
	}
	return n, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for concurrent single-process use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
