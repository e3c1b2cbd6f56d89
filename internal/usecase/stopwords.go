package usecase

import (
	"fmt"

	"docstyle/internal/adapter/analyzer"
	"docstyle/internal/port"
)

// LoadStopWords reads the stop-word document at path and tokenizes it with
// tok. An empty path yields the built-in list when builtin is set, or no
// stop words otherwise.
func LoadStopWords(source port.TextSource, tok *analyzer.Tokenizer, path string, builtin bool) (*analyzer.StopWordSet, error) {
	if path == "" {
		if builtin {
			return analyzer.DefaultStopWords(), nil
		}
		return analyzer.NewStopWordSet(nil), nil
	}

	text, err := source.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load stop words: %w", err)
	}
	return analyzer.ParseStopWords(tok, text), nil
}
