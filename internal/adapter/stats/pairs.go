package stats

import (
	"sort"

	"docstyle/internal/domain"
)

// ExtractPairs emits the canonical pair (tokens[i], tokens[j]) for every
// j in (i, min(i+1+maxSep, n)). TotalPairs counts every emission;
// DistinctPairs is the size of the resulting set.
func ExtractPairs(tokens []string, maxSep int) (domain.PairStats, error) {
	if maxSep < 1 {
		return domain.PairStats{}, domain.ErrInvalidSeparation
	}

	n := len(tokens)
	pairs := make(domain.PairSet)
	total := 0

	for i := 0; i < n; i++ {
		end := i + 1 + maxSep
		// maxSep can be large enough to overflow
		if end > n || end < i {
			end = n
		}
		for j := i + 1; j < end; j++ {
			pairs[domain.NewWordPair(tokens[i], tokens[j])] = struct{}{}
			total++
		}
	}

	return domain.PairStats{
		Pairs:         pairs,
		TotalPairs:    total,
		DistinctPairs: len(pairs),
	}, nil
}

// PairRatio returns DistinctPairs / TotalPairs.
func PairRatio(ps domain.PairStats) (float64, error) {
	if ps.TotalPairs == 0 {
		return 0, domain.ErrNoPairs
	}
	return float64(ps.DistinctPairs) / float64(ps.TotalPairs), nil
}

// SortedPairs returns the pairs ordered by first then second word.
func SortedPairs(set domain.PairSet) []domain.WordPair {
	out := make([]domain.WordPair, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
