// Package report renders analysis results as classic text, JSON or tables.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"docstyle/internal/domain"
	"docstyle/internal/port"
)

// Display precision per metric.
const (
	AveragePlaces    = 2
	RatioPlaces      = 3
	OverallPlaces    = 3
	SimilarityPlaces = 4
)

// Formats accepted by New.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// New returns the sink for format writing to w.
func New(format string, w io.Writer, pairSamples int) (port.ReportSink, error) {
	switch format {
	case "", FormatText:
		return NewTextSink(w, pairSamples), nil
	case FormatJSON:
		return NewJSONSink(w), nil
	case FormatTable:
		return NewTableSink(w), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// DisplayWords shows all words when there are at most six, otherwise the
// first three and last three joined around an ellipsis.
func DisplayWords(sorted []string) string {
	if len(sorted) <= 6 {
		return strings.Join(sorted, " ")
	}
	head := strings.Join(sorted[:3], " ")
	tail := strings.Join(sorted[len(sorted)-3:], " ")
	return head + " ... " + tail
}

// samplePairs returns the n first and n last pairs. When the list is short
// enough to show in full, or n < 1, tail is nil.
func samplePairs(pairs []domain.WordPair, n int) (head, tail []domain.WordPair) {
	if n <= 0 || len(pairs) <= 2*n {
		return pairs, nil
	}
	return pairs[:n], pairs[len(pairs)-n:]
}
