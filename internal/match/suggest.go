package match

import (
	"cmp"
	"slices"

	"table-binder/internal/common"
)

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates closest to name, best first. Ties keep
// the candidates' original order.
func Suggest(name string, candidates []string, limit int) []string {
	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if s := NameSimilarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	var names []string
	for _, r := range ranked {
		names = append(names, r.name)
	}

	return common.Take(names, max(limit, 0))
}
