package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"docstyle/internal/domain"
)

// TableSink renders results as rounded box tables.
type TableSink struct {
	w io.Writer
}

func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

func (s *TableSink) WriteDocument(st domain.DocumentStats) error {
	metrics := newTable(table.Row{"Metric", "Value"}, 2)
	metrics.SetTitle("%s", st.Name)
	metrics.AppendRows([]table.Row{
		{"Tokens", st.TokenCount},
		{"Average word length", fmt.Sprintf("%.*f", AveragePlaces, st.AverageWordLength)},
		{"Distinct word ratio", fmt.Sprintf("%.*f", RatioPlaces, st.DistinctRatio)},
		{"Total pairs", st.TotalPairs},
		{"Distinct pairs", st.DistinctPairs},
		{"Pair ratio", fmt.Sprintf("%.*f", RatioPlaces, st.PairRatio)},
	})

	buckets := newTable(table.Row{"Length", "Count", "Words"}, 1, 2)
	for _, b := range st.Buckets {
		buckets.AppendRow(table.Row{b.Length, len(b.Words), DisplayWords(b.Words)})
	}

	return s.write(metrics.Render(), buckets.Render())
}

func (s *TableSink) WriteAnalysis(a domain.Analysis) error {
	for _, st := range a.Documents {
		if err := s.WriteDocument(st); err != nil {
			return err
		}
	}

	c := a.Comparison
	summary := newTable(table.Row{"Comparison", "Value"}, 2)
	summary.SetTitle("Summary comparison")
	summary.AppendRows([]table.Row{
		{"Longer words", fmt.Sprintf("%s > %s", c.LongerWords, c.ShorterWords)},
		{"Overall similarity", fmt.Sprintf("%.*f", OverallPlaces, c.Overall)},
		{"Word pair similarity", fmt.Sprintf("%.*f", SimilarityPlaces, c.PairSimilarity)},
	})

	byLength := newTable(table.Row{"Length", "Similarity"}, 1, 2)
	for _, l := range c.ByLength {
		byLength.AppendRow(table.Row{l.Length, fmt.Sprintf("%.*f", SimilarityPlaces, l.Score)})
	}

	return s.write(summary.Render(), byLength.Render())
}

func (s *TableSink) WriteMatrix(m domain.MatrixReport) error {
	n := len(m.Documents)
	header := make(table.Row, n+1)
	header[0] = "overall \\ pairs"
	for i := range m.Documents {
		header[i+1] = strconv.Itoa(i + 1)
	}

	grid := make([][]string, n)
	for i := range grid {
		grid[i] = make([]string, n)
		grid[i][i] = "-"
	}
	// Upper triangle holds overall similarity, lower triangle pair similarity.
	for _, c := range m.Cells {
		grid[c.Row][c.Col] = fmt.Sprintf("%.*f", OverallPlaces, c.Overall)
		grid[c.Col][c.Row] = fmt.Sprintf("%.*f", SimilarityPlaces, c.PairSimilarity)
	}

	right := make([]int, 0, n)
	for i := 2; i <= n+1; i++ {
		right = append(right, i)
	}
	tw := newTable(header, right...)
	for i, name := range m.Documents {
		row := make(table.Row, n+1)
		row[0] = fmt.Sprintf("%d %s", i+1, name)
		for j, v := range grid[i] {
			row[j+1] = v
		}
		tw.AppendRow(row)
	}
	tw.SetCaption("max separation %d", m.MaxSep)

	out := []string{tw.Render()}
	if len(m.Skipped) > 0 {
		skipped := newTable(table.Row{"Skipped"})
		for _, name := range m.Skipped {
			skipped.AppendRow(table.Row{name})
		}
		out = append(out, skipped.Render())
	}
	return s.write(out...)
}

func (s *TableSink) write(blocks ...string) error {
	for _, b := range blocks {
		if _, err := fmt.Fprintln(s.w, b); err != nil {
			return err
		}
	}
	return nil
}

// newTable builds a rounded table with the given 1-based columns
// right-aligned.
func newTable(header table.Row, rightAligned ...int) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, col := range rightAligned {
		configs = append(configs, table.ColumnConfig{
			Number:      col,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw
}
