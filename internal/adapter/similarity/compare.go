// Package similarity compares two documents by vocabulary, by
// per-length vocabulary and by word-pair sets.
package similarity

import (
	"fmt"

	"docstyle/internal/adapter/stats"
	"docstyle/internal/domain"
)

// Overall is the Jaccard similarity of the two vocabularies.
func Overall(a, b domain.Document) float64 {
	return Jaccard(stats.DistinctWords(a.Tokens), stats.DistinctWords(b.Tokens))
}

// ByLength compares length buckets slot by slot. Slots beyond one
// document's longest word compare against the empty set and score 0.
func ByLength(a, b domain.Document) []domain.LengthSimilarity {
	bucketsA := stats.BucketsByLength(stats.DistinctWords(a.Tokens))
	bucketsB := stats.BucketsByLength(stats.DistinctWords(b.Tokens))

	n := len(bucketsA)
	if len(bucketsB) > n {
		n = len(bucketsB)
	}

	out := make([]domain.LengthSimilarity, n)
	for i := 0; i < n; i++ {
		score := 0.0
		if i < len(bucketsA) && i < len(bucketsB) {
			score = Jaccard(bucketsA[i], bucketsB[i])
		}
		out[i] = domain.LengthSimilarity{Length: i + 1, Score: score}
	}
	return out
}

// Pairs is the Jaccard similarity of the two distinct-pair sets.
func Pairs(a, b domain.Document, maxSep int) (float64, error) {
	pa, err := stats.ExtractPairs(a.Tokens, maxSep)
	if err != nil {
		return 0, err
	}
	pb, err := stats.ExtractPairs(b.Tokens, maxSep)
	if err != nil {
		return 0, err
	}
	return Jaccard(pa.Pairs, pb.Pairs), nil
}

// LongerWords names the document with the higher average word length.
// Equal averages favour b.
func LongerWords(a, b domain.Document) (longer, shorter string, err error) {
	avgA, err := stats.AverageWordLength(a.Tokens)
	if err != nil {
		return "", "", fmt.Errorf("average word length of %s: %w", a.Name, err)
	}
	avgB, err := stats.AverageWordLength(b.Tokens)
	if err != nil {
		return "", "", fmt.Errorf("average word length of %s: %w", b.Name, err)
	}
	if avgA > avgB {
		return a.Name, b.Name, nil
	}
	return b.Name, a.Name, nil
}

// Compare runs every comparison between a and b.
func Compare(a, b domain.Document, maxSep int) (domain.SimilarityReport, error) {
	if maxSep < 1 {
		return domain.SimilarityReport{}, domain.ErrInvalidSeparation
	}

	longer, shorter, err := LongerWords(a, b)
	if err != nil {
		return domain.SimilarityReport{}, err
	}

	pairScore, err := Pairs(a, b, maxSep)
	if err != nil {
		return domain.SimilarityReport{}, err
	}

	return domain.SimilarityReport{
		First:          a.Name,
		Second:         b.Name,
		LongerWords:    longer,
		ShorterWords:   shorter,
		Overall:        Overall(a, b),
		ByLength:       ByLength(a, b),
		PairSimilarity: pairScore,
	}, nil
}
