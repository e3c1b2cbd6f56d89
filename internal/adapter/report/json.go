package report

import (
	"encoding/json"
	"io"

	"docstyle/internal/domain"
)

// JSONSink writes indented JSON with metrics rounded to display precision.
type JSONSink struct {
	w io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) WriteDocument(st domain.DocumentStats) error {
	return s.encode(roundDocument(st))
}

func (s *JSONSink) WriteAnalysis(a domain.Analysis) error {
	out := domain.Analysis{
		MaxSep:     a.MaxSep,
		Documents:  make([]domain.DocumentStats, len(a.Documents)),
		Comparison: roundComparison(a.Comparison),
	}
	for i, st := range a.Documents {
		out.Documents[i] = roundDocument(st)
	}
	return s.encode(out)
}

func (s *JSONSink) WriteMatrix(m domain.MatrixReport) error {
	out := m
	out.Cells = make([]domain.MatrixCell, len(m.Cells))
	for i, c := range m.Cells {
		c.Overall = Round(c.Overall, OverallPlaces)
		c.PairSimilarity = Round(c.PairSimilarity, SimilarityPlaces)
		out.Cells[i] = c
	}
	return s.encode(out)
}

func (s *JSONSink) encode(v any) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func roundDocument(st domain.DocumentStats) domain.DocumentStats {
	st.AverageWordLength = Round(st.AverageWordLength, AveragePlaces)
	st.DistinctRatio = Round(st.DistinctRatio, RatioPlaces)
	st.PairRatio = Round(st.PairRatio, RatioPlaces)
	return st
}

func roundComparison(c domain.SimilarityReport) domain.SimilarityReport {
	c.Overall = Round(c.Overall, OverallPlaces)
	c.PairSimilarity = Round(c.PairSimilarity, SimilarityPlaces)
	byLength := make([]domain.LengthSimilarity, len(c.ByLength))
	for i, l := range c.ByLength {
		byLength[i] = domain.LengthSimilarity{Length: l.Length, Score: Round(l.Score, SimilarityPlaces)}
	}
	c.ByLength = byLength
	return c
}
