package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsOpts analysisFlags

var statsCmd = &cobra.Command{
	Use:   "stats <document>",
	Short: "Analyze a single document",
	Long: `Print the per-document section of the report for one document.

Examples:
  docstyle stats essay.txt
  docstyle stats essay.txt --max-sep 4 --format table`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsOpts.register(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if err := statsOpts.apply(cmd, cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	uc, err := newAnalyzeUseCase(cmd, cfg)
	if err != nil {
		return err
	}

	st, err := uc.Stats(args[0], cfg.Analysis.MaxSep)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	sink, closeSink, err := openSink(cmd, cfg)
	if err != nil {
		return err
	}
	if err := sink.WriteDocument(st); err != nil {
		_ = closeSink()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeSink()
}
