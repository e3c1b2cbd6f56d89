package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeOpts analysisFlags

var analyzeCmd = &cobra.Command{
	Use:   "analyze <first> <second>",
	Short: "Analyze two documents and compare them",
	Long: `Evaluate each document (average word length, distinct word ratio, word
sets by length, word pairs) and print a summary comparison: which document
uses longer words and the Jaccard similarity of overall word use, word use by
length and word pairs.

Examples:
  docstyle analyze testDocuments/a.txt testDocuments/b.txt
  docstyle analyze a.txt b.txt --max-sep 3 --stop-words stop.txt --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeOpts.register(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if err := analyzeOpts.apply(cmd, cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	uc, err := newAnalyzeUseCase(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := uc.Analyze(args[0], args[1], cfg.Analysis.MaxSep)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	sink, closeSink, err := openSink(cmd, cfg)
	if err != nil {
		return err
	}
	if err := sink.WriteAnalysis(result); err != nil {
		_ = closeSink()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeSink()
}
