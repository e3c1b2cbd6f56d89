package usecase

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"docstyle/internal/adapter/similarity"
	"docstyle/internal/adapter/stats"
	"docstyle/internal/domain"
	"docstyle/internal/port"
)

// ProgressFunc is called after each compared pair.
type ProgressFunc func(done, total int)

// MatrixUseCase compares every pair of documents found under a root.
type MatrixUseCase struct {
	walker  port.FileWalker
	analyze *AnalyzeUseCase
	logger  *zap.Logger
}

// NewMatrixUseCase creates a new matrix use case. Documents go through the
// analyze use case's cache when one is attached.
func NewMatrixUseCase(
	walker port.FileWalker,
	analyze *AnalyzeUseCase,
	logger *zap.Logger,
) *MatrixUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatrixUseCase{
		walker:  walker,
		analyze: analyze,
		logger:  logger,
	}
}

type corpusEntry struct {
	name  string
	vocab map[string]struct{}
	pairs domain.PairSet
}

// Run compares all matched documents under root. Documents with no tokens
// after filtering are listed as skipped.
func (u *MatrixUseCase) Run(root string, maxSep int, progress ProgressFunc) (domain.MatrixReport, error) {
	if maxSep < 1 {
		return domain.MatrixReport{}, domain.ErrInvalidSeparation
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return domain.MatrixReport{}, fmt.Errorf("failed to walk directory: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return domain.MatrixReport{}, err
	}

	report := domain.MatrixReport{MaxSep: maxSep}
	entries := make([]corpusEntry, 0, len(files))

	for _, file := range files {
		name := file.Path
		if rel, err := filepath.Rel(absRoot, file.Path); err == nil {
			name = rel
		}

		doc, err := u.analyze.loadVersion(file.Path, name, file.ModTime)
		if err != nil {
			return domain.MatrixReport{}, err
		}
		if doc.Len() == 0 {
			u.logger.Warn("skipping empty document", zap.String("name", name))
			report.Skipped = append(report.Skipped, name)
			continue
		}

		pairs, err := stats.ExtractPairs(doc.Tokens, maxSep)
		if err != nil {
			return domain.MatrixReport{}, err
		}
		entries = append(entries, corpusEntry{
			name:  name,
			vocab: stats.DistinctWords(doc.Tokens),
			pairs: pairs.Pairs,
		})
	}

	for _, e := range entries {
		report.Documents = append(report.Documents, e.name)
	}

	total := len(entries) * (len(entries) - 1) / 2
	done := 0
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			report.Cells = append(report.Cells, domain.MatrixCell{
				Row:            i,
				Col:            j,
				Overall:        similarity.Jaccard(entries[i].vocab, entries[j].vocab),
				PairSimilarity: similarity.Jaccard(entries[i].pairs, entries[j].pairs),
			})
			done++
			if progress != nil {
				progress(done, total)
			}
		}
	}

	if c := u.analyze.cache; c != nil {
		hits, misses := c.Stats()
		u.logger.Debug("document cache", zap.Int("hits", hits), zap.Int("misses", misses))
	}
	u.logger.Info("matrix computed",
		zap.Int("documents", len(entries)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("pairs", total),
	)

	return report, nil
}
