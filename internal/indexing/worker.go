package indexing

import (
	"mneme-index/internal/core"
	"mneme-index/internal/corpus"
	"mneme-index/internal/errs"
	"mneme-index/internal/logger"
	"mneme-index/internal/tokenizer"
)

// WorkerStats summarizes one worker's contribution to the run, rolled up
// by the orchestrator into the final IndexingStatistics.
type WorkerStats struct {
	DocumentsIndexed int
	TotalTokens      int
	Flushes          int
}

// IndexWorker drains batches from a shared channel until it sees a nil
// sentinel, tokenizing and indexing every document along the way. It
// flushes the in-memory index to its partial file whenever accumulated
// postings cross the memory threshold, and once more for any remainder
// when the batch channel closes out.
type IndexWorker struct {
	id        int
	batchCh   <-chan *corpus.Batch
	index     *InMemoryIndex
	writer    *PartialIndexWriter
	docWriter *DocIndexWriter
}

// NewIndexWorker wires together one worker's in-memory index, partial
// postings writer, and document-index fragment writer.
func NewIndexWorker(id int, batchCh <-chan *corpus.Batch, index *InMemoryIndex, writer *PartialIndexWriter, docWriter *DocIndexWriter) *IndexWorker {
	return &IndexWorker{id: id, batchCh: batchCh, index: index, writer: writer, docWriter: docWriter}
}

// Run processes batches until the nil sentinel, returning accumulated
// stats. Any tokenization, indexing, or flush failure aborts the worker
// immediately rather than skipping the offending document, per the
// fail-fast contract the indexer gives the rest of the run.
func (w *IndexWorker) Run() (WorkerStats, error) {
	log := logger.WithWorker(w.id)
	var stats WorkerStats

	for batch := range w.batchCh {
		if batch == nil {
			break
		}

		for _, doc := range batch.Documents {
			tokens := tokenizer.Tokenize(doc.Text)

			tokenFreq := make(map[string]int, len(tokens))
			for _, tok := range tokens {
				tokenFreq[tok]++
			}

			if w.index.IndexDocument(doc.ID, tokenFreq) {
				if err := w.writer.WriteSnapshot(w.index.Snapshot()); err != nil {
					return stats, errs.NewWorkerError(w.id, err)
				}
				w.index.Reset()
				stats.Flushes++
			}

			if err := w.docWriter.WriteEntry(core.DocumentIndexEntry{
				ID:             doc.ID,
				CharacterCount: len(doc.Text),
				TokenCount:     len(tokens),
			}); err != nil {
				return stats, errs.NewWorkerError(w.id, err)
			}

			stats.DocumentsIndexed++
			stats.TotalTokens += len(tokens)
		}
	}

	if !w.index.IsEmpty() {
		if err := w.writer.WriteSnapshot(w.index.Snapshot()); err != nil {
			return stats, errs.NewWorkerError(w.id, err)
		}
		w.index.Reset()
		stats.Flushes++
	}

	log.Debug().Int("documents", stats.DocumentsIndexed).Int("flushes", stats.Flushes).Msg("worker drained")
	return stats, nil
}
