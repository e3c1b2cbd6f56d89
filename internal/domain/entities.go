package domain

import "errors"

var (
	// ErrEmptyDocument is returned when a per-document metric is requested
	// for a token sequence of zero length.
	ErrEmptyDocument = errors.New("document has no tokens")

	// ErrNoPairs is returned when a pair ratio is requested but no word
	// pairs were emitted.
	ErrNoPairs = errors.New("document has no word pairs")

	// ErrInvalidSeparation is returned when max_sep is less than 1.
	ErrInvalidSeparation = errors.New("max separation must be a positive integer")
)

// Document is a named, filtered token sequence. It is built once per run
// and never mutated afterwards.
type Document struct {
	Name   string
	Tokens []string
}

// NewDocument copies tokens so the caller cannot mutate the document later.
func NewDocument(name string, tokens []string) Document {
	owned := make([]string, len(tokens))
	copy(owned, tokens)
	return Document{Name: name, Tokens: owned}
}

// Len returns the number of tokens in the document.
func (d Document) Len() int {
	return len(d.Tokens)
}

// WordPair is an unordered pair of tokens stored with First <= Second.
type WordPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// NewWordPair returns the canonical pair for a and b.
func NewWordPair(a, b string) WordPair {
	if a <= b {
		return WordPair{First: a, Second: b}
	}
	return WordPair{First: b, Second: a}
}

// Less orders pairs by First, then Second.
func (p WordPair) Less(o WordPair) bool {
	if p.First != o.First {
		return p.First < o.First
	}
	return p.Second < o.Second
}

// PairSet is the set of distinct word pairs of a document.
type PairSet map[WordPair]struct{}

// PairStats is the output of pair extraction for one document.
type PairStats struct {
	Pairs         PairSet
	TotalPairs    int
	DistinctPairs int
}

// LengthBucket holds the distinct words of one exact length, sorted.
type LengthBucket struct {
	Length int      `json:"length"`
	Words  []string `json:"words"`
}

// DocumentStats aggregates the single-document metrics.
type DocumentStats struct {
	Name              string         `json:"name"`
	TokenCount        int            `json:"token_count"`
	AverageWordLength float64        `json:"average_word_length"`
	DistinctRatio     float64        `json:"distinct_ratio"`
	Buckets           []LengthBucket `json:"buckets"`
	Pairs             []WordPair     `json:"pairs"`
	TotalPairs        int            `json:"total_pairs"`
	DistinctPairs     int            `json:"distinct_pairs"`
	PairRatio         float64        `json:"pair_ratio"`
}

// LengthSimilarity is the Jaccard score for one bucket slot.
type LengthSimilarity struct {
	Length int     `json:"length"`
	Score  float64 `json:"score"`
}

// SimilarityReport is the comparison between two documents.
type SimilarityReport struct {
	First          string             `json:"first"`
	Second         string             `json:"second"`
	LongerWords    string             `json:"longer_words"`
	ShorterWords   string             `json:"shorter_words"`
	Overall        float64            `json:"overall"`
	ByLength       []LengthSimilarity `json:"by_length"`
	PairSimilarity float64            `json:"pair_similarity"`
}

// Analysis is the full two-document result: both per-document sections
// followed by the summary comparison.
type Analysis struct {
	MaxSep     int              `json:"max_sep"`
	Documents  []DocumentStats  `json:"documents"`
	Comparison SimilarityReport `json:"comparison"`
}

// MatrixCell is the comparison of two documents in a corpus.
type MatrixCell struct {
	Row            int     `json:"row"`
	Col            int     `json:"col"`
	Overall        float64 `json:"overall"`
	PairSimilarity float64 `json:"pair_similarity"`
}

// MatrixReport holds pairwise similarities across a set of documents.
type MatrixReport struct {
	MaxSep    int          `json:"max_sep"`
	Documents []string     `json:"documents"`
	Cells     []MatrixCell `json:"cells"`
	Skipped   []string     `json:"skipped,omitempty"`
}
