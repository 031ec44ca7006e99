// Package indexing builds the inverted index: workers accumulate postings
// in memory per document batch, flush sorted partial indexes to disk once
// a worker's memory budget is exhausted, and a final streaming merge
// combines every partial file into the corpus-wide inverted index and
// lexicon.
package indexing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"mneme-index/internal/constants"
	"mneme-index/internal/corpus"
	"mneme-index/internal/core"
	"mneme-index/internal/errs"
	"mneme-index/internal/logger"
)

// Options configures one indexing run.
type Options struct {
	CorpusPath      string
	IndexDir        string
	MemoryLimitMB   int
	WorkerCount     int
	BatchSize       int
	QueueDepth      int
	ShowProgress    bool
	CurrentRSSBytes func() int64 // overridable for tests; defaults to runtime.MemStats
}

// Orchestrator runs one full indexing pass: stream the corpus, fan it out
// to a worker pool, merge the resulting partial indexes, and write the
// corpus-wide statistics file.
type Orchestrator struct {
	opts Options
}

// NewOrchestrator creates an orchestrator for the given options, filling
// in defaults for anything left zero.
func NewOrchestrator(opts Options) *Orchestrator {
	if opts.WorkerCount <= 0 {
		opts.WorkerCount = min(runtime.NumCPU(), constants.MaxWorkers)
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = constants.DefaultBatchSize
	}
	if opts.QueueDepth <= 0 {
		opts.QueueDepth = constants.DefaultQueueDepth
	}
	if opts.CurrentRSSBytes == nil {
		opts.CurrentRSSBytes = currentRSSBytes
	}
	return &Orchestrator{opts: opts}
}

func currentRSSBytes() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.Sys)
}

// perWorkerBudgetMB computes the memory budget, in MB, each worker may
// accumulate postings against before it must flush, following the
// reference implementation's arithmetic: soft_limit = 0.8*limit,
// budget = soft_limit - current_rss, per_worker = budget/workers -
// overhead. Both budget and per_worker must be positive or the run
// cannot proceed safely.
func perWorkerBudgetMB(limitMB int, currentRSSBytes int64, workers int) (int, error) {
	softLimitMB := float64(limitMB) * constants.SoftMemoryFraction
	currentMB := float64(currentRSSBytes) / float64(constants.OneMB)
	budgetMB := softLimitMB - currentMB
	if budgetMB <= 0 {
		return 0, errs.NewConfigurationError("memory_limit_mb",
			fmt.Sprintf("soft limit %.1fMB already exhausted by current usage %.1fMB", softLimitMB, currentMB))
	}

	perWorker := int(budgetMB)/workers - constants.OverheadPerWorkerMB
	if perWorker <= 0 {
		return 0, errs.NewConfigurationError("memory_limit_mb",
			fmt.Sprintf("per-worker budget %dMB (of %d workers) does not cover the %dMB overhead reserve",
				int(budgetMB)/workers, workers, constants.OverheadPerWorkerMB))
	}
	return perWorker, nil
}

// Result summarizes one indexing run's outputs.
type Result struct {
	Stats           core.IndexingStatistics
	IndexPath       string
	LexiconPath     string
	DocumentIndexPath string
	StatisticsPath  string
}

// Run executes the full indexing pipeline and returns the resulting
// statistics plus the paths of every file it wrote.
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	if err := os.MkdirAll(o.opts.IndexDir, 0o755); err != nil {
		return Result{}, errs.NewIOError(o.opts.IndexDir, err)
	}

	perWorkerMB, err := perWorkerBudgetMB(o.opts.MemoryLimitMB, o.opts.CurrentRSSBytes(), o.opts.WorkerCount)
	if err != nil {
		return Result{}, err
	}
	maxEntries := MaxEntriesForBudget(perWorkerMB)
	logger.Infof("indexing with %d workers, %dMB/worker budget (%d postings before flush)",
		o.opts.WorkerCount, perWorkerMB, maxEntries)

	batchCh := make(chan *corpus.Batch, o.opts.QueueDepth)
	streamer := corpus.NewDocumentStreamer(o.opts.CorpusPath, o.opts.BatchSize, o.opts.WorkerCount, o.opts.ShowProgress)

	group, groupCtx := errgroup.WithContext(ctx)

	partialPaths := make([][]string, o.opts.WorkerCount)
	fragmentPaths := make([]string, o.opts.WorkerCount)
	workerStats := make([]WorkerStats, o.opts.WorkerCount)

	for i := 0; i < o.opts.WorkerCount; i++ {
		workerID := i
		group.Go(func() error {
			writer, err := NewPartialIndexWriter(o.opts.IndexDir, workerID)
			if err != nil {
				return err
			}
			defer writer.Close()

			docWriter, err := NewDocIndexWriter(o.opts.IndexDir, workerID)
			if err != nil {
				return err
			}
			defer docWriter.Close()

			fragmentPaths[workerID] = docWriter.Path()

			index := NewInMemoryIndex(maxEntries)
			worker := NewIndexWorker(workerID, batchCh, index, writer, docWriter)
			stats, err := worker.Run()
			workerStats[workerID] = stats
			partialPaths[workerID] = writer.Paths()
			return err
		})
	}

	var totalDocs int
	group.Go(func() error {
		// Closing the channel once the streamer stops lets every worker's
		// receive loop end even when the streamer gave up early (a corpus
		// error, or a worker error that cancelled groupCtx) without sending
		// its sentinels.
		defer close(batchCh)
		n, err := streamer.Stream(groupCtx, batchCh)
		totalDocs = n
		return err
	})

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	var allPartialPaths []string
	for _, paths := range partialPaths {
		allPartialPaths = append(allPartialPaths, paths...)
	}

	merger := NewIndexMerger(o.opts.IndexDir, allPartialPaths)
	indexPath, lexiconPath, err := merger.Merge()
	if err != nil {
		return Result{}, err
	}

	docIndexPath, err := ConcatenateDocIndexes(o.opts.IndexDir, fragmentPaths)
	if err != nil {
		return Result{}, err
	}

	totalTokens := 0
	for _, s := range workerStats {
		totalTokens += s.TotalTokens
	}
	avgTokens := 0.0
	if totalDocs > 0 {
		avgTokens = float64(totalTokens) / float64(totalDocs)
	}

	numLists, avgListSize, err := summarizeIndex(indexPath)
	if err != nil {
		return Result{}, err
	}

	indexSizeMB, err := fileSizeMB(indexPath)
	if err != nil {
		return Result{}, err
	}

	stats := core.IndexingStatistics{
		NumberOfDocuments:        totalDocs,
		AverageTokensPerDocument: avgTokens,
		IndexSizeMB:              indexSizeMB,
		ElapsedSeconds:           time.Since(start).Seconds(),
		NumberOfLists:            numLists,
		AverageListSize:          avgListSize,
	}

	statsPath, err := writeStatistics(o.opts.IndexDir, stats)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Stats:             stats,
		IndexPath:         indexPath,
		LexiconPath:       lexiconPath,
		DocumentIndexPath: docIndexPath,
		StatisticsPath:    statsPath,
	}, nil
}

func fileSizeMB(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errs.NewIOError(path, err)
	}
	return float64(info.Size()) / float64(constants.OneMB), nil
}

func writeStatistics(dir string, stats core.IndexingStatistics) (string, error) {
	path := filepath.Join(dir, "indexing_statistics.json")
	data, err := statsJSON(stats)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errs.NewIOError(path, err)
	}
	return path, nil
}
