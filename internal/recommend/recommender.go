// Package recommend ranks catalog packages against a free-text query.
package recommend

import (
	"strings"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/fuzzy"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/observability"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/textnorm"
)

// DefaultTopK is used when a caller passes a non-positive limit.
const DefaultTopK = 3

// ExtractCategory returns the first category, in catalog.Categories order,
// that appears as a substring of query.
func ExtractCategory(query string) (catalog.Category, bool) {
	q := strings.ToLower(query)
	for _, c := range catalog.Categories {
		if strings.Contains(q, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Recommender narrows by category hint, then ranks by fuzzy similarity.
type Recommender struct {
	packages []catalog.Package
	logger   *observability.Logger
}

// NewRecommender creates a recommender over packages in catalog order.
func NewRecommender(packages []catalog.Package, logger *observability.Logger) *Recommender {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Recommender{packages: packages, logger: logger}
}

// Recommend returns at most topK packages. An empty result means nothing matched.
func (r *Recommender) Recommend(query string, topK int) []catalog.Package {
	if topK < 1 {
		topK = DefaultTopK
	}

	candidates := r.packages
	hint, ok := ExtractCategory(query)
	if ok {
		candidates = make([]catalog.Package, 0, len(r.packages))
		for _, p := range r.packages {
			if strings.Contains(strings.ToLower(p.Category), string(hint)) {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		r.logger.Debug().Str("category", string(hint)).Msg("no packages in category")
		return []catalog.Package{}
	}

	composites := make([]string, len(candidates))
	for i, p := range candidates {
		composites[i] = textnorm.Normalize(p.Composite())
	}

	matches := fuzzy.Rank(textnorm.Normalize(query), composites, topK)
	out := make([]catalog.Package, len(matches))
	for i, m := range matches {
		out[i] = candidates[m.Index]
	}

	r.logger.Debug().
		Str("category", string(hint)).
		Int("candidates", len(candidates)).
		Int("results", len(out)).
		Msg("packages ranked")

	return out
}
