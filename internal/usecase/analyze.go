package usecase

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"docstyle/internal/adapter/cache"
	"docstyle/internal/adapter/similarity"
	"docstyle/internal/adapter/stats"
	"docstyle/internal/domain"
	"docstyle/internal/port"
)

// AnalyzeUseCase turns named text sources into documents and computes
// per-document statistics and two-document comparisons.
type AnalyzeUseCase struct {
	source     port.TextSource
	tokenizer  port.Tokenizer
	logger     *zap.Logger
	concurrent bool
	cache      *cache.DocumentCache

	mu    sync.RWMutex
	stops port.StopWordFilter
}

// NewAnalyzeUseCase creates a new analyze use case. A nil stops keeps
// every token.
func NewAnalyzeUseCase(
	source port.TextSource,
	tokenizer port.Tokenizer,
	stops port.StopWordFilter,
	logger *zap.Logger,
	concurrent bool,
) *AnalyzeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzeUseCase{
		source:     source,
		tokenizer:  tokenizer,
		stops:      stops,
		logger:     logger,
		concurrent: concurrent,
	}
}

// WithCache keeps built documents in c between calls. Only sources that
// implement port.VersionedSource are cached.
func (u *AnalyzeUseCase) WithCache(c *cache.DocumentCache) *AnalyzeUseCase {
	u.cache = c
	return u
}

// SetStopWords replaces the stop-word filter and drops cached documents
// built with the previous one.
func (u *AnalyzeUseCase) SetStopWords(stops port.StopWordFilter) {
	u.mu.Lock()
	u.stops = stops
	u.mu.Unlock()

	if u.cache != nil {
		u.cache.Invalidate()
	}
}

// LoadDocument reads, tokenizes and filters the named document.
func (u *AnalyzeUseCase) LoadDocument(name string) (domain.Document, error) {
	versioned, ok := u.source.(port.VersionedSource)
	if u.cache == nil || !ok {
		return u.read(name, name)
	}

	version, err := versioned.Version(name)
	if err != nil {
		return domain.Document{}, err
	}
	return u.loadVersion(name, name, version)
}

// loadVersion returns the document at path, reusing the cached copy while
// version is unchanged.
func (u *AnalyzeUseCase) loadVersion(path, name string, version int64) (domain.Document, error) {
	if u.cache == nil {
		return u.read(path, name)
	}
	if doc, ok := u.cache.Get(path, version); ok {
		return doc, nil
	}

	doc, err := u.read(path, name)
	if err != nil {
		return domain.Document{}, err
	}
	u.cache.Put(path, version, doc)
	return doc, nil
}

func (u *AnalyzeUseCase) read(path, name string) (domain.Document, error) {
	text, err := u.source.ReadText(path)
	if err != nil {
		return domain.Document{}, err
	}
	return u.BuildDocument(name, text), nil
}

// BuildDocument tokenizes and filters text already in memory.
func (u *AnalyzeUseCase) BuildDocument(name, text string) domain.Document {
	u.mu.RLock()
	stops := u.stops
	u.mu.RUnlock()

	tokens := u.tokenizer.Tokenize(text)
	raw := len(tokens)
	if stops != nil {
		tokens = stops.Filter(tokens)
	}

	u.logger.Debug("document tokenized",
		zap.String("name", name),
		zap.Int("tokens", raw),
		zap.Int("filtered", len(tokens)),
	)
	return domain.NewDocument(name, tokens)
}

// Stats computes the per-document section for one named document.
func (u *AnalyzeUseCase) Stats(name string, maxSep int) (domain.DocumentStats, error) {
	if maxSep < 1 {
		return domain.DocumentStats{}, domain.ErrInvalidSeparation
	}
	doc, err := u.LoadDocument(name)
	if err != nil {
		return domain.DocumentStats{}, err
	}
	return stats.Analyze(doc, maxSep)
}

// Analyze computes both per-document sections and the comparison.
func (u *AnalyzeUseCase) Analyze(first, second string, maxSep int) (domain.Analysis, error) {
	if maxSep < 1 {
		return domain.Analysis{}, domain.ErrInvalidSeparation
	}

	names := [2]string{first, second}
	var (
		docs [2]domain.Document
		sts  [2]domain.DocumentStats
		errs [2]error
		wg   sync.WaitGroup
	)

	run := func(i int) {
		doc, err := u.LoadDocument(names[i])
		if err != nil {
			errs[i] = err
			return
		}
		docs[i] = doc
		sts[i], errs[i] = stats.Analyze(doc, maxSep)
	}

	if u.concurrent {
		for i := range names {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range names {
			run(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return domain.Analysis{}, err
		}
	}

	cmp, err := similarity.Compare(docs[0], docs[1], maxSep)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("compare %s and %s: %w", first, second, err)
	}

	u.logger.Info("documents compared",
		zap.String("first", first),
		zap.String("second", second),
		zap.Int("max_sep", maxSep),
		zap.Float64("overall", cmp.Overall),
		zap.Float64("pairs", cmp.PairSimilarity),
	)

	return domain.Analysis{
		MaxSep:     maxSep,
		Documents:  sts[:],
		Comparison: cmp,
	}, nil
}
