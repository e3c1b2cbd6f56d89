package port

type Tokenizer interface {
	Tokenize(text string) []string
}

// StopWordFilter removes stop words from a token sequence.
type StopWordFilter interface {
	Filter(tokens []string) []string
}
