// Package app wires configuration into a ready-to-use conversation router.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/booking"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/cache"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/config"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/dialogue"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/faq"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/intent"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/ledger"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/observability"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/recommend"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/storage"
)

// App holds every long-lived component of one process.
type App struct {
	Config      *config.Config
	Logger      *observability.Logger
	Catalog     *catalog.Catalog
	Classifier  *intent.RuleClassifier
	Resolver    *faq.Resolver
	Recommender *recommend.Recommender
	Ledger      ledger.Ledger
	Router      *dialogue.Router

	db    *sql.DB
	cache cache.Client
}

// NewLogger builds the process logger from config.
func NewLogger(cfg *config.Config) *observability.Logger {
	return observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "concierge",
	})
}

// Build loads the catalog and classifier rules and wires the router.
// Any failure here is fatal: nothing is ready to accept input.
func Build(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*App, error) {
	if logger == nil {
		logger = NewLogger(cfg)
	}
	log := logger.WithOperation("build")
	start := time.Now()

	a := &App{Config: cfg, Logger: logger}

	if cfg.UsesDatabase() {
		db, err := storage.OpenAndMigrate(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		a.db = db
	}

	rules, err := intent.LoadRules(cfg.Intent.RulesPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load intent rules: %w", err)
	}
	a.Classifier, err = intent.NewRuleClassifier(rules, cfg.Intent.ConfidenceThreshold)
	if err != nil {
		a.Close()
		return nil, err
	}

	src, err := NewCatalogSource(cfg.Catalog, a.db)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Catalog, err = src.Load(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	packages := a.Catalog.Packages()
	if len(packages) == 0 {
		log.Warn().Msgf("%s catalog has no packages, recommendations and bookings will find no match", cfg.Catalog.Driver)
	}

	a.cache, err = NewCache(ctx, cfg.Cache)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	a.Resolver = faq.NewResolver(a.Catalog.FAQs(), faq.Config{
		Cache:    a.cache,
		CacheTTL: cfg.Cache.TTL,
	}, logger.WithOperation("faq"))
	if err := a.Resolver.Check(); err != nil {
		a.Close()
		return nil, err
	}

	a.Recommender = recommend.NewRecommender(packages, logger.WithOperation("recommend"))

	a.Ledger, err = ledger.Open(cfg.Ledger, a.db)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	bookings := booking.NewDialogue(packages, a.Ledger, booking.Config{
		CurrencySymbol: cfg.Dialogue.CurrencySymbol,
	}, logger.WithOperation("booking"))

	a.Router = dialogue.NewRouter(dialogue.Config{
		TopK:           cfg.Dialogue.TopK,
		ExitPhrases:    cfg.Dialogue.ExitPhrases,
		Greetings:      cfg.Dialogue.Greetings,
		CurrencySymbol: cfg.Dialogue.CurrencySymbol,
	}, a.Classifier, a.Resolver, a.Recommender, bookings, logger.WithOperation("dialogue"))

	log.Info().
		Int("packages", len(packages)).
		Int("faqs", a.Resolver.Len()).
		Str("catalog", cfg.Catalog.Driver).
		Str("ledger", cfg.Ledger.Driver).
		Str("cache", cfg.Cache.Driver).
		Dur("elapsed", time.Since(start)).
		Msg("concierge ready")

	return a, nil
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var firstErr error
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewCatalogSource returns the source selected by cfg. db is only used by the sql driver.
func NewCatalogSource(cfg config.CatalogConfig, db *sql.DB) (catalog.Source, error) {
	switch cfg.Driver {
	case "csv", "":
		return catalog.CSVSource{PackagesPath: cfg.PackagesPath, FAQsPath: cfg.FAQsPath}, nil
	case "yaml":
		return catalog.YAMLSource{Path: cfg.YAMLPath}, nil
	case "sql":
		if db == nil {
			return nil, fmt.Errorf("sql catalog needs a database connection")
		}
		return catalog.SQLSource{DB: db}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog driver: %s", cfg.Driver)
	}
}

// NewCache returns the answer cache selected by cfg, or nil when caching is off.
func NewCache(ctx context.Context, cfg config.CacheConfig) (cache.Client, error) {
	switch cfg.Driver {
	case "none", "":
		return nil, nil
	case "memory":
		return cache.NewMemoryClient(cfg.MaxEntries), nil
	case "redis":
		c, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", cfg.Driver)
	}
}
