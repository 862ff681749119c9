package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Norms.URL == "" {
		return fmt.Errorf("norms.url must not be empty")
	}
	if c.Norms.Timeout <= 0 {
		return fmt.Errorf("norms.timeout must be > 0 (got %v)", c.Norms.Timeout)
	}

	if c.Lexical.Timeout <= 0 {
		return fmt.Errorf("lexical.timeout must be > 0 (got %v)", c.Lexical.Timeout)
	}
	if c.Translate.Timeout <= 0 {
		return fmt.Errorf("translate.timeout must be > 0 (got %v)", c.Translate.Timeout)
	}

	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1 (got %d)", c.Batch.Workers)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Backend {
	case "sqlite", "memory":
	case "postgres":
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want sqlite, postgres or memory)", s.Backend)
	}

	if s.MaxConns < 1 {
		return fmt.Errorf("max_conns must be >= 1 (got %d)", s.MaxConns)
	}

	return nil
}
