// Package fuzzy ranks candidate strings against a query with a
// token-order-insensitive similarity score.
//
// The score is the token sort ratio: both strings are split on whitespace,
// their tokens sorted and re-joined, and the results compared with a
// normalized indel (insert/delete) edit distance scaled to [0, 100].
// Callers normalize case before calling; the matcher compares runes as given.
package fuzzy

import (
	"errors"
	"sort"
	"strings"
)

// MaxScore is the score of two strings with identical sorted tokens.
const MaxScore = 100.0

// ErrNoCandidates is returned by Best when the candidate list is empty.
var ErrNoCandidates = errors.New("no candidates to match against")

// Match is one ranked candidate.
type Match struct {
	Index int
	Score float64
}

// Rank scores every candidate against query and returns at most limit
// matches ordered by descending score. Ties keep the candidates' original order.
func Rank(query string, candidates []string, limit int) []Match {
	if limit < 1 || len(candidates) == 0 {
		return nil
	}

	q := sortTokens(query)
	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{Index: i, Score: ratio(q, sortTokens(c))}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Best returns the single highest-scoring candidate.
func Best(query string, candidates []string) (Match, error) {
	if len(candidates) == 0 {
		return Match{}, ErrNoCandidates
	}
	return Rank(query, candidates, 1)[0], nil
}

// TokenSortRatio scores a against b in [0, 100].
func TokenSortRatio(a, b string) float64 {
	return ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) []rune {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return []rune(strings.Join(tokens, " "))
}

// ratio is 100 * (1 - indel/(len(a)+len(b))), where the indel distance
// is len(a)+len(b)-2*lcs(a, b).
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return MaxScore
	}
	return MaxScore * float64(2*lcsLength(a, b)) / float64(total)
}

func lcsLength(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
