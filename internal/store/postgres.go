package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	// pgx driver for database/sql; goose migrations need *sql.DB.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/phraselevel/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Postgres backs the KV with a shared PostgreSQL database, for fleets that
// want one warm cache across hosts (CI runners, batch clusters).
type Postgres struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
	log  *slog.Logger
}

// OpenPostgres connects a pgx pool, applies embedded goose migrations, and
// returns the ready store. The pool is pinged for fail-fast validation.
func OpenPostgres(ctx context.Context, cfg config.StoreConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse DSN: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	if err := migrate(ctx, cfg.DSN); err != nil {
		pool.Close()
		return nil, err
	}

	log.Debug("postgres store ready")

	return &Postgres{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:  log.With("component", "store"),
	}, nil
}

// migrate applies the embedded schema migrations. goose requires *sql.DB,
// so a short-lived database/sql connection is used alongside the pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres: open for migrate: %w", err)
	}
	defer db.Close()

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("postgres: migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, sub)
	if err != nil {
		return fmt.Errorf("postgres: goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("postgres: goose up: %w", err)
	}

	return nil
}

func (p *Postgres) Get(ctx context.Context, bucket, key string) (string, bool, error) {
	query, args, err := p.sb.
		Select("value").
		From("kv").
		Where(squirrel.Eq{"bucket": bucket, "key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("postgres: build get: %w", err)
	}

	var value string
	err = p.pool.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres: get %s/%s: %w", bucket, key, err)
	}
	return value, true, nil
}

func (p *Postgres) Put(ctx context.Context, bucket, key, value string) error {
	query, args, err := p.sb.
		Insert("kv").
		Columns("bucket", "key", "value").
		Values(bucket, key, value).
		Suffix("ON CONFLICT (bucket, key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres: build put: %w", err)
	}

	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("postgres: put %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (p *Postgres) Count(ctx context.Context, bucket string) (int64, error) {
	query, args, err := p.sb.
		Select("COUNT(*)").
		From("kv").
		Where(squirrel.Eq{"bucket": bucket}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("postgres: build count: %w", err)
	}

	var n int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres: count %s: %w", bucket, err)
	}
	return n, nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
