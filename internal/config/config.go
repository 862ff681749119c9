package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Lexical   LexicalConfig   `yaml:"lexical"`
	Translate TranslateConfig `yaml:"translate"`
	Norms     NormsConfig     `yaml:"norms"`
	Batch     BatchConfig     `yaml:"batch"`
	Log       LogConfig       `yaml:"log"`
}

// StoreConfig selects and configures the key-value store backing the lemma
// cache, the translation cache, and the AoA norms store.
type StoreConfig struct {
	// Backend is one of "sqlite", "postgres", "memory".
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"sqlite"`
	// Path is the SQLite database file. Empty means the platform data dir
	// (XDG_DATA_HOME or ~/.local/share) under phraselevel/.
	Path string `yaml:"path" env:"STORE_PATH"`
	// DSN is the PostgreSQL connection string; required for the postgres backend.
	DSN      string `yaml:"dsn"       env:"STORE_DSN"`
	MaxConns int32  `yaml:"max_conns" env:"STORE_MAX_CONNS" env-default:"8"`
}

// LexicalConfig holds settings for the Wiktionary lexical-reference client.
type LexicalConfig struct {
	// BaseURL overrides the per-language Wiktionary endpoint; used by tests.
	BaseURL string `yaml:"base_url" env:"LEXICAL_BASE_URL"`
	// UserAgent is sent on every request; Wiktionary rejects anonymous clients.
	UserAgent string        `yaml:"user_agent" env:"LEXICAL_USER_AGENT" env-default:"phraselevel/1.0 (https://github.com/heartmarshall/phraselevel)"`
	Timeout   time.Duration `yaml:"timeout"    env:"LEXICAL_TIMEOUT"    env-default:"10s"`
}

// TranslateConfig holds settings for the translation client.
type TranslateConfig struct {
	BaseURL string        `yaml:"base_url" env:"TRANSLATE_BASE_URL" env-default:"https://api.mymemory.translated.net"`
	Timeout time.Duration `yaml:"timeout"  env:"TRANSLATE_TIMEOUT"  env-default:"10s"`
}

// NormsConfig holds settings for the one-time AoA norms download.
type NormsConfig struct {
	// URL of the Glasgow Norms CSV (Scott et al. 2019, CC BY 4.0).
	URL     string        `yaml:"url"     env:"NORMS_URL"     env-default:"https://static-content.springer.com/esm/art%3A10.3758%2Fs13428-018-1099-3/MediaObjects/13428_2018_1099_MOESM2_ESM.csv"`
	Timeout time.Duration `yaml:"timeout" env:"NORMS_TIMEOUT" env-default:"60s"`
}

// BatchConfig holds settings for concurrent batch analysis.
type BatchConfig struct {
	// Workers caps the worker pool; the effective count is
	// min(workers, number of phrases).
	Workers int `yaml:"workers" env:"BATCH_WORKERS" env-default:"8"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
