package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"docstyle/config"
	"docstyle/internal/adapter/analyzer"
	"docstyle/internal/adapter/fs"
	"docstyle/internal/adapter/report"
	"docstyle/internal/logger"
	"docstyle/internal/port"
	"docstyle/internal/usecase"
)

// analysisFlags are shared by every command that runs an analysis.
type analysisFlags struct {
	maxSep    int
	stopWords string
	format    string
	output    string
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.maxSep, "max-sep", "s", 0, "maximum separation between words in a pair (default from config)")
	cmd.Flags().StringVar(&f.stopWords, "stop-words", "", "stop-word file (default from config, else built-in list)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "report format: text, json, table (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
}

// apply overlays explicitly set flags on cfg and validates the result.
func (f *analysisFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("max-sep") {
		cfg.Analysis.MaxSep = f.maxSep
	}
	if f.stopWords != "" {
		cfg.Analysis.StopWords = f.stopWords
	}
	if f.format != "" {
		cfg.Report.Format = f.format
	}
	if f.output != "" {
		cfg.Report.Output = f.output
	}
	return cfg.Validate()
}

// newAnalyzeUseCase wires the tokenizer, stop words and file source.
func newAnalyzeUseCase(cmd *cobra.Command, cfg *config.Config) (*usecase.AnalyzeUseCase, error) {
	source := fs.NewFileSource(GetRootDir())
	tokenizer := analyzer.NewTokenizer()

	stops, err := usecase.LoadStopWords(source, tokenizer, cfg.Analysis.StopWords, cfg.Analysis.UseBuiltinStopWords)
	if err != nil {
		return nil, err
	}

	l := logger.FromContext(cmd.Context())
	return usecase.NewAnalyzeUseCase(source, tokenizer, stops, l, cfg.Analysis.Concurrent), nil
}

// openSink returns the configured report sink and a close func.
func openSink(cmd *cobra.Command, cfg *config.Config) (port.ReportSink, func() error, error) {
	var w io.Writer = cmd.OutOrStdout()
	closeFn := func() error { return nil }

	if cfg.Report.Output != "" {
		f, err := os.Create(cfg.Report.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	sink, err := report.New(cfg.Report.Format, w, cfg.Report.PairSamples)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return sink, closeFn, nil
}
