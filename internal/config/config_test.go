package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Catalog.Driver)
	assert.Equal(t, "csv", cfg.Ledger.Driver)
	assert.Equal(t, 3, cfg.Dialogue.TopK)
	assert.Equal(t, []string{"bye", "exit", "quit", "close", "goodbye", "see you"}, cfg.Dialogue.ExitPhrases)
	assert.Len(t, cfg.Dialogue.Greetings, 2)
	assert.Equal(t, "₹", cfg.Dialogue.CurrencySymbol)
}

func TestLoad_YAMLFileResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dev.yaml")
	content := `
catalog:
  driver: csv
  packages_path: data/packages.csv
  faqs_path: /abs/faq.csv
ledger:
  path: out/bookings.csv
database:
  sqlite:
    path: concierge.db
cache:
  driver: none
  ttl: 30s
dialogue:
  top_k: 5
  greetings: ["Namaste!"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data/packages.csv"), cfg.Catalog.PackagesPath)
	assert.Equal(t, "/abs/faq.csv", cfg.Catalog.FAQsPath)
	assert.Equal(t, filepath.Join(dir, "out/bookings.csv"), cfg.Ledger.Path)
	assert.Equal(t, filepath.Join(dir, "concierge.db"), cfg.Database.SQLite.Path)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 5, cfg.Dialogue.TopK)
	assert.Equal(t, []string{"Namaste!"}, cfg.Dialogue.Greetings)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/trips?sslmode=disable")
	t.Setenv("LEDGER_DRIVER", "sql")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/trips?sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "sql", cfg.Ledger.Driver)
	assert.True(t, cfg.UsesDatabase())
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown catalog driver", func(c *Config) { c.Catalog.Driver = "xml" }},
		{"yaml catalog without path", func(c *Config) { c.Catalog.Driver = "yaml" }},
		{"unknown ledger driver", func(c *Config) { c.Ledger.Driver = "kafka" }},
		{"csv ledger without path", func(c *Config) { c.Ledger.Path = "" }},
		{"unknown database driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"postgres without dsn", func(c *Config) {
			c.Database.Driver = "postgres"
			c.Ledger.Driver = "sql"
		}},
		{"unknown cache driver", func(c *Config) { c.Cache.Driver = "memcached" }},
		{"zero top_k", func(c *Config) { c.Dialogue.TopK = 0 }},
		{"no greetings", func(c *Config) { c.Dialogue.Greetings = nil }},
		{"threshold above one", func(c *Config) { c.Intent.ConfidenceThreshold = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoad_InMemorySQLitePathUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mem.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  sqlite:\n    path: \":memory:\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Database.SQLite.Path)
	assert.Equal(t, filepath.Join(dir, "bookings.csv"), cfg.Ledger.Path)
}
