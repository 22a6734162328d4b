// Package config provides unified configuration loading for the travel concierge.
// Supports YAML files, .env files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the concierge.
type Config struct {
	Catalog       CatalogConfig       `yaml:"catalog"`
	Ledger        LedgerConfig        `yaml:"ledger"`
	Database      DatabaseConfig      `yaml:"database"`
	Cache         CacheConfig         `yaml:"cache"`
	Intent        IntentConfig        `yaml:"intent"`
	Dialogue      DialogueConfig      `yaml:"dialogue"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// CatalogConfig selects where packages and FAQs are read from.
type CatalogConfig struct {
	Driver       string `yaml:"driver"` // csv, yaml or sql
	PackagesPath string `yaml:"packages_path"`
	FAQsPath     string `yaml:"faqs_path"`
	YAMLPath     string `yaml:"yaml_path"`
}

// LedgerConfig selects where completed bookings are appended.
type LedgerConfig struct {
	Driver string `yaml:"driver"` // csv or sql
	Path   string `yaml:"path"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"` // sqlite or postgres
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path         string `yaml:"path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// PostgresConfig holds Postgres-specific settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// CacheConfig holds answer cache settings.
type CacheConfig struct {
	Driver     string        `yaml:"driver"` // none, memory or redis
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
	Prefix   string `yaml:"prefix"`
}

// IntentConfig holds intent classifier settings.
type IntentConfig struct {
	RulesPath           string  `yaml:"rules_path"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// DialogueConfig holds conversation behaviour settings.
type DialogueConfig struct {
	TopK           int      `yaml:"top_k"`
	ExitPhrases    []string `yaml:"exit_phrases"`
	Greetings      []string `yaml:"greetings"`
	CurrencySymbol string   `yaml:"currency_symbol"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
// An empty path skips the file and keeps defaults.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}

		cfg.resolvePaths(path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Driver:       "csv",
			PackagesPath: "data/packages.csv",
			FAQsPath:     "data/faq.csv",
		},
		Ledger: LedgerConfig{
			Driver: "csv",
			Path:   "bookings.csv",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{
				Path:         "concierge.db",
				MaxOpenConns: 1,
			},
			Postgres: PostgresConfig{
				MaxOpenConns:    10,
				MaxIdleConns:    2,
				ConnMaxLifetime: 5 * time.Minute,
			},
		},
		Cache: CacheConfig{
			Driver:     "memory",
			TTL:        10 * time.Minute,
			MaxEntries: 1000,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				PoolSize: 5,
				Prefix:   "concierge:",
			},
		},
		Intent: IntentConfig{
			ConfidenceThreshold: 0.5,
		},
		Dialogue: DialogueConfig{
			TopK:        3,
			ExitPhrases: []string{"bye", "exit", "quit", "close", "goodbye", "see you"},
			Greetings: []string{
				"Hi! How can I help you plan your trip?",
				"Hello! Ready to explore destinations?",
			},
			CurrencySymbol: "₹",
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Catalog.Driver {
	case "csv":
		if c.Catalog.PackagesPath == "" || c.Catalog.FAQsPath == "" {
			return fmt.Errorf("csv catalog needs packages_path and faqs_path")
		}
	case "yaml":
		if c.Catalog.YAMLPath == "" {
			return fmt.Errorf("yaml catalog needs yaml_path")
		}
	case "sql":
	default:
		return fmt.Errorf("invalid catalog driver: %s", c.Catalog.Driver)
	}

	switch c.Ledger.Driver {
	case "csv":
		if c.Ledger.Path == "" {
			return fmt.Errorf("csv ledger needs path")
		}
	case "sql":
	default:
		return fmt.Errorf("invalid ledger driver: %s", c.Ledger.Driver)
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("invalid database driver: %s", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.UsesDatabase() && c.Database.Postgres.DSN == "" {
		return fmt.Errorf("postgres driver needs a dsn")
	}

	if c.Cache.Driver != "none" && c.Cache.Driver != "memory" && c.Cache.Driver != "redis" {
		return fmt.Errorf("invalid cache driver: %s", c.Cache.Driver)
	}

	if c.Dialogue.TopK < 1 {
		return fmt.Errorf("top_k must be positive")
	}
	if len(c.Dialogue.Greetings) == 0 {
		return fmt.Errorf("at least one greeting is required")
	}

	if c.Intent.ConfidenceThreshold < 0 || c.Intent.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be between 0 and 1")
	}

	return nil
}

// UsesDatabase reports whether any component reads or writes the SQL store.
func (c *Config) UsesDatabase() bool {
	return c.Catalog.Driver == "sql" || c.Ledger.Driver == "sql"
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "postgres" {
		return d.Postgres.DSN
	}
	return d.SQLite.Path
}

// resolvePaths makes every relative file path relative to the config file location.
func (c *Config) resolvePaths(configPath string) {
	c.Catalog.PackagesPath = ResolveRelativePath(configPath, c.Catalog.PackagesPath)
	c.Catalog.FAQsPath = ResolveRelativePath(configPath, c.Catalog.FAQsPath)
	c.Catalog.YAMLPath = ResolveRelativePath(configPath, c.Catalog.YAMLPath)
	c.Intent.RulesPath = ResolveRelativePath(configPath, c.Intent.RulesPath)
	c.Ledger.Path = ResolveRelativePath(configPath, c.Ledger.Path)

	// in-memory and URI forms are passed to the driver untouched
	if p := c.Database.SQLite.Path; p != ":memory:" && !strings.HasPrefix(p, "file:") {
		c.Database.SQLite.Path = ResolveRelativePath(configPath, p)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CATALOG_DRIVER"); v != "" {
		cfg.Catalog.Driver = v
	}

	if v := os.Getenv("CATALOG_PACKAGES_PATH"); v != "" {
		cfg.Catalog.PackagesPath = v
	}

	if v := os.Getenv("CATALOG_FAQS_PATH"); v != "" {
		cfg.Catalog.FAQsPath = v
	}

	if v := os.Getenv("LEDGER_DRIVER"); v != "" {
		cfg.Ledger.Driver = v
	}

	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.Ledger.Path = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		if strings.HasPrefix(v, "sqlite:") {
			cfg.Database.Driver = "sqlite"
			cfg.Database.SQLite.Path = strings.TrimPrefix(v, "sqlite:")
		} else if strings.HasPrefix(v, "postgres") {
			cfg.Database.Driver = "postgres"
			cfg.Database.Postgres.DSN = v
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.Driver = "redis"
		cfg.Cache.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("INTENT_RULES_PATH"); v != "" {
		cfg.Intent.RulesPath = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

// ResolveRelativePath resolves a path relative to the config file location.
func ResolveRelativePath(configPath, targetPath string) string {
	if targetPath == "" || filepath.IsAbs(targetPath) {
		return targetPath
	}
	configDir := filepath.Dir(configPath)
	return filepath.Join(configDir, targetPath)
}
