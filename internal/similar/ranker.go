// Package similar ranks product names against a query string. The web
// layer only depends on the Ranker interface, so the scoring backend
// can be swapped without touching callers.
package similar

import (
	"sort"

	"marketpanel/internal"
	"marketpanel/internal/util"
)

type Ranker interface {
	Rank(query string, candidates []string, limit int) []internal.RankedMatch
}

// TokenRanker blends a character-bigram Dice score with plain token
// overlap. Listing titles repeat the same vocabulary in different
// orders ("Vaso Decorativo Azul" vs "Azul Vaso 3D"), which token
// overlap absorbs better than edit distance.
type TokenRanker struct {
	Threshold float64
}

func NewTokenRanker(threshold float64) *TokenRanker {
	return &TokenRanker{Threshold: threshold}
}

func (r *TokenRanker) Rank(query string, candidates []string, limit int) []internal.RankedMatch {
	normQuery := util.NormalizeText(query)
	queryTokens := util.Tokenize(query)

	out := make([]internal.RankedMatch, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == query {
			continue
		}
		score := scoreName(normQuery, util.NormalizeText(candidate), queryTokens, util.Tokenize(candidate))
		if score < r.Threshold {
			continue
		}
		out = append(out, internal.RankedMatch{Name: candidate, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func scoreName(query, candidate string, queryTokens, candidateTokens []string) float64 {
	dice := util.DiceCoefficient(query, candidate)
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return dice
	}

	set := map[string]struct{}{}
	for _, t := range candidateTokens {
		set[t] = struct{}{}
	}
	overlap := 0
	for _, t := range queryTokens {
		if _, ok := set[t]; ok {
			overlap++
		}
	}
	tokenScore := float64(overlap) / float64(len(queryTokens))
	return 0.65*dice + 0.35*tokenScore
}
