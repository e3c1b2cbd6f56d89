package report

import (
	"fmt"
	"io"

	"docstyle/internal/domain"
)

// TextSink writes the numbered console report.
type TextSink struct {
	w           io.Writer
	pairSamples int
}

func NewTextSink(w io.Writer, pairSamples int) *TextSink {
	return &TextSink{w: w, pairSamples: pairSamples}
}

func (s *TextSink) WriteDocument(st domain.DocumentStats) error {
	p := &printer{w: s.w}

	p.printf("\nEvaluating document: %s\n", st.Name)
	p.printf("1. Average word length: %.*f\n", AveragePlaces, st.AverageWordLength)
	p.printf("2. Ratio of distinct words to total words: %.*f\n", RatioPlaces, st.DistinctRatio)

	p.printf("3. Word sets for document %s:\n", st.Name)
	for _, b := range st.Buckets {
		if len(b.Words) == 0 {
			p.printf("%4d:%4d:\n", b.Length, 0)
			continue
		}
		p.printf("%4d:%4d: %s\n", b.Length, len(b.Words), DisplayWords(b.Words))
	}

	p.printf("4. Word pairs for document %s\n", st.Name)
	p.printf("  %d distinct pairs\n", st.DistinctPairs)
	head, tail := samplePairs(st.Pairs, s.pairSamples)
	for _, pair := range head {
		p.printf("  %s %s\n", pair.First, pair.Second)
	}
	if tail != nil {
		p.printf("  ...\n")
		for _, pair := range tail {
			p.printf("  %s %s\n", pair.First, pair.Second)
		}
	}
	p.printf("5. Ratio of distinct word pairs to total: %.*f\n", RatioPlaces, st.PairRatio)

	return p.err
}

func (s *TextSink) WriteAnalysis(a domain.Analysis) error {
	for _, st := range a.Documents {
		if err := s.WriteDocument(st); err != nil {
			return err
		}
	}

	c := a.Comparison
	p := &printer{w: s.w}
	p.printf("\nSummary comparison\n")
	p.printf("1. %s on average uses longer words than %s\n", c.LongerWords, c.ShorterWords)
	p.printf("2. Overall word use similarity: %.*f\n", OverallPlaces, c.Overall)
	p.printf("3. Word use similarity by length:\n")
	for _, l := range c.ByLength {
		p.printf("%4d: %.*f\n", l.Length, SimilarityPlaces, l.Score)
	}
	p.printf("4. Word pair similarity: %.*f\n", SimilarityPlaces, c.PairSimilarity)

	return p.err
}

func (s *TextSink) WriteMatrix(m domain.MatrixReport) error {
	p := &printer{w: s.w}
	p.printf("Pairwise similarity for %d documents (max separation %d)\n", len(m.Documents), m.MaxSep)
	for _, c := range m.Cells {
		p.printf("  %s | %s: overall %.*f, pairs %.*f\n",
			m.Documents[c.Row], m.Documents[c.Col],
			OverallPlaces, c.Overall, SimilarityPlaces, c.PairSimilarity)
	}
	for _, name := range m.Skipped {
		p.printf("  skipped %s\n", name)
	}
	return p.err
}

// printer remembers the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
