// Package stats computes single-document style metrics and word pairs.
package stats

import (
	"fmt"
	"sort"

	"docstyle/internal/domain"
)

// AverageWordLength returns the mean token length.
func AverageWordLength(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, domain.ErrEmptyDocument
	}
	total := 0
	for _, t := range tokens {
		total += len(t)
	}
	return float64(total) / float64(len(tokens)), nil
}

// DistinctWordRatio returns |distinct tokens| / |tokens|.
func DistinctWordRatio(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, domain.ErrEmptyDocument
	}
	return float64(len(DistinctWords(tokens))) / float64(len(tokens)), nil
}

// DistinctWords returns the vocabulary of a token sequence.
func DistinctWords(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// BucketsByLength partitions a word set by length. Slot i holds the words
// of length i+1, for lengths 1..max; lengths with no words keep an empty slot.
func BucketsByLength(words map[string]struct{}) []map[string]struct{} {
	maxLen := 0
	for w := range words {
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}

	buckets := make([]map[string]struct{}, maxLen)
	for i := range buckets {
		buckets[i] = make(map[string]struct{})
	}
	for w := range words {
		if len(w) == 0 {
			continue
		}
		buckets[len(w)-1][w] = struct{}{}
	}
	return buckets
}

// LengthBuckets returns the sorted, reportable form of BucketsByLength.
func LengthBuckets(words map[string]struct{}) []domain.LengthBucket {
	sets := BucketsByLength(words)
	out := make([]domain.LengthBucket, len(sets))
	for i, set := range sets {
		out[i] = domain.LengthBucket{Length: i + 1, Words: sortedWords(set)}
	}
	return out
}

func sortedWords(set map[string]struct{}) []string {
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Analyze computes every per-document metric for doc.
func Analyze(doc domain.Document, maxSep int) (domain.DocumentStats, error) {
	avg, err := AverageWordLength(doc.Tokens)
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("average word length of %s: %w", doc.Name, err)
	}
	ratio, err := DistinctWordRatio(doc.Tokens)
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("distinct word ratio of %s: %w", doc.Name, err)
	}

	pairs, err := ExtractPairs(doc.Tokens, maxSep)
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("word pairs of %s: %w", doc.Name, err)
	}
	pairRatio, err := PairRatio(pairs)
	if err != nil {
		return domain.DocumentStats{}, fmt.Errorf("pair ratio of %s: %w", doc.Name, err)
	}

	return domain.DocumentStats{
		Name:              doc.Name,
		TokenCount:        doc.Len(),
		AverageWordLength: avg,
		DistinctRatio:     ratio,
		Buckets:           LengthBuckets(DistinctWords(doc.Tokens)),
		Pairs:             SortedPairs(pairs.Pairs),
		TotalPairs:        pairs.TotalPairs,
		DistinctPairs:     pairs.DistinctPairs,
		PairRatio:         pairRatio,
	}, nil
}
