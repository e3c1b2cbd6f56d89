package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"docstyle/internal/adapter/fs"
	"docstyle/internal/logger"
	"docstyle/internal/usecase"
)

var (
	matrixOpts       analysisFlags
	matrixNoProgress bool
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [path]",
	Short: "Compare every pair of documents in a directory",
	Long: `Find documents under a directory (matrix.includes / matrix.excludes globs)
and compute overall word use and word pair similarity for every pair.

Examples:
  docstyle matrix ./corpus
  docstyle matrix ./corpus --max-sep 3 --format json -o matrix.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatrix,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixOpts.register(matrixCmd)
	matrixCmd.Flags().BoolVar(&matrixNoProgress, "no-progress", false, "disable the progress bar")
}

func runMatrix(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	if err := matrixOpts.apply(cmd, cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	analyzeUC, err := newAnalyzeUseCase(cmd, cfg)
	if err != nil {
		return err
	}

	walker := fs.NewWalker(cfg.Matrix.Includes, cfg.Matrix.Excludes)
	matrixUC := usecase.NewMatrixUseCase(walker, analyzeUC, logger.FromContext(cmd.Context()))

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if matrixNoProgress {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Comparing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}
		_ = bar.Set(done)
	}

	result, err := matrixUC.Run(path, cfg.Analysis.MaxSep, progress)
	if err != nil {
		return fmt.Errorf("matrix failed: %w", err)
	}

	sink, closeSink, err := openSink(cmd, cfg)
	if err != nil {
		return err
	}
	if err := sink.WriteMatrix(result); err != nil {
		_ = closeSink()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeSink()
}
