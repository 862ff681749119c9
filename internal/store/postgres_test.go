//go:build e2e

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/phraselevel/internal/config"
)

var (
	pgOnce    sync.Once
	pgDSN     string
	pgInitErr error
)

// sharedPostgresDSN starts one PostgreSQL container for the whole test run.
// The container lives until the process exits.
func sharedPostgresDSN(t *testing.T) string {
	t.Helper()

	pgOnce.Do(func() {
		pgDSN, pgInitErr = startPostgres()
	})
	if pgInitErr != nil {
		t.Fatalf("start postgres container: %v", pgInitErr)
	}
	return pgDSN
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()), nil
}

func openTestPostgres(t *testing.T) *Postgres {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.StoreConfig{
		Backend:  "postgres",
		DSN:      sharedPostgresDSN(t),
		MaxConns: 4,
	}

	kv, err := OpenPostgres(ctx, cfg, newTestLogger())
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	return kv
}

func TestPostgres_Contract(t *testing.T) {
	kv := openTestPostgres(t)
	runKVContract(t, kv)
}

func TestPostgres_MigrationsIdempotent(t *testing.T) {
	// Opening twice against the same database must not fail: goose skips
	// already-applied migrations.
	first := openTestPostgres(t)

	ctx := context.Background()
	if err := first.Put(ctx, BucketAoA, "apple", "4.2"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second := openTestPostgres(t)
	v, ok, err := second.Get(ctx, BucketAoA, "apple")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "4.2" {
		t.Fatalf("Get = (%q, %v), want (4.2, true)", v, ok)
	}
}
