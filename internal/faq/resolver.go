// Package faq answers free-form questions from the catalog's FAQ entries.
package faq

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/cache"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/fuzzy"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/observability"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/textnorm"
)

// ErrEmptyKnowledgeBase is returned when no FAQ entries are loaded.
var ErrEmptyKnowledgeBase = errors.New("faq knowledge base is empty")

// Config holds resolver settings.
type Config struct {
	// Cache stores resolved answers. Nil disables caching.
	Cache    cache.Client
	CacheTTL time.Duration
}

// Resolver returns the answer paired with the closest FAQ question.
// There is no minimum score: any non-empty knowledge base yields an answer.
type Resolver struct {
	questions   []string
	answers     []string
	// fingerprint identifies the FAQ set so cached answers never cross catalogs.
	fingerprint string
	cache       cache.Client
	ttl         time.Duration
	logger      *observability.Logger
}

// NewResolver creates a resolver over the given FAQ entries.
func NewResolver(entries []catalog.FAQEntry, cfg Config, logger *observability.Logger) *Resolver {
	if logger == nil {
		logger = observability.Nop()
	}

	r := &Resolver{
		questions: make([]string, len(entries)),
		answers:   make([]string, len(entries)),
		cache:     cfg.Cache,
		ttl:       cfg.CacheTTL,
		logger:    logger,
	}
	h := sha256.New()
	for i, e := range entries {
		r.questions[i] = textnorm.Normalize(e.Question)
		r.answers[i] = e.Answer
		h.Write([]byte(r.questions[i]))
		h.Write([]byte{0})
		h.Write([]byte(e.Answer))
		h.Write([]byte{0})
	}
	r.fingerprint = hex.EncodeToString(h.Sum(nil))[:16]
	return r
}

func (r *Resolver) cacheKey(q string) string {
	return cache.Key("faq", r.fingerprint, q)
}

// Check reports ErrEmptyKnowledgeBase when there is nothing to resolve against.
func (r *Resolver) Check() error {
	if len(r.questions) == 0 {
		return ErrEmptyKnowledgeBase
	}
	return nil
}

// Len returns the number of FAQ entries.
func (r *Resolver) Len() int {
	return len(r.questions)
}

// Resolve normalizes query and returns the best-matching answer.
func (r *Resolver) Resolve(ctx context.Context, query string) (string, error) {
	if err := r.Check(); err != nil {
		return "", err
	}

	q := textnorm.Normalize(query)
	key := r.cacheKey(q)

	if r.cache != nil {
		cached, err := r.cache.Get(ctx, key)
		if err == nil {
			r.logger.Debug().Str("query", q).Msg("faq cache hit")
			return string(cached), nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn().Err(err).Msg("faq cache read failed")
		}
	}

	match, err := fuzzy.Best(q, r.questions)
	if err != nil {
		return "", err
	}
	answer := r.answers[match.Index]

	r.logger.Debug().
		Str("query", q).
		Str("matched", r.questions[match.Index]).
		Float64("score", match.Score).
		Msg("faq resolved")

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, []byte(answer), r.ttl); err != nil {
			r.logger.Warn().Err(err).Msg("faq cache write failed")
		}
	}

	return answer, nil
}
