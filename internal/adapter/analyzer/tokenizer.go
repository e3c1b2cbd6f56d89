package analyzer

import (
	"strings"
)

// Tokenizer turns raw text into lowercase ASCII-letter tokens.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text on whitespace, strips every non-letter from each
// chunk, drops chunks that end up empty and lowercases the rest.
// Relative order is preserved.
func (t *Tokenizer) Tokenize(text string) []string {
	chunks := strings.Fields(text)
	tokens := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		word := lettersOnly(chunk)
		if word == "" {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// lettersOnly keeps the ASCII letters of s, lowercased.
func lettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}
