package analyzer

// StopWordSet is a set of tokens removed before analysis.
type StopWordSet struct {
	words map[string]struct{}
}

// NewStopWordSet builds a set from already-normalized tokens.
func NewStopWordSet(tokens []string) *StopWordSet {
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return &StopWordSet{words: m}
}

// ParseStopWords tokenizes a stop-word document with the same rules as the
// analysed documents.
func ParseStopWords(tok *Tokenizer, text string) *StopWordSet {
	return NewStopWordSet(tok.Tokenize(text))
}

// DefaultStopWords returns the built-in English stop list.
func DefaultStopWords() *StopWordSet {
	return NewStopWordSet(defaultStopwords())
}

// Contains reports whether token is a stop word. A nil set contains nothing.
func (s *StopWordSet) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[token]
	return ok
}

// Len returns the number of stop words.
func (s *StopWordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Filter returns the tokens not in the set, in their original order.
func (s *StopWordSet) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if s.Contains(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// defaultStopwords returns a set of common English stopwords.
func defaultStopwords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
		"i", "me", "my", "him", "them", "there", "then", "into",
	}
}
