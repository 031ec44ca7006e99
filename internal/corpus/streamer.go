// Package corpus streams documents off the indexer's input JSONL file and
// fans them out, in batches, to the worker pool that builds partial
// indexes.
package corpus

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mneme-index/internal/constants"
	"mneme-index/internal/core"
	"mneme-index/internal/display"
	"mneme-index/internal/errs"
	"mneme-index/internal/logger"
)

// Batch is a group of raw documents handed to one worker at a time. Workers
// tokenize and index every document in a batch before requesting the next.
type Batch struct {
	Documents []core.RawDocument
}

// DocumentStreamer reads the corpus file line by line and emits fixed-size
// batches onto a bounded channel, giving the worker pool natural
// backpressure: the streamer blocks on the channel send once workers fall
// behind, rather than buffering the whole corpus in memory.
type DocumentStreamer struct {
	path       string
	batchSize  int
	numWorkers int
	showBar    bool
}

// NewDocumentStreamer creates a streamer over the corpus file at path,
// grouping documents into batches of batchSize and writing one closing nil
// sentinel per worker once the file is exhausted so every worker goroutine
// knows to drain and exit.
func NewDocumentStreamer(path string, batchSize, numWorkers int, showProgress bool) *DocumentStreamer {
	if batchSize <= 0 {
		batchSize = constants.DefaultBatchSize
	}
	return &DocumentStreamer{path: path, batchSize: batchSize, numWorkers: numWorkers, showBar: showProgress}
}

// Stream opens the corpus file and sends batches (followed by one nil
// sentinel per worker) on batchCh until EOF, a context cancellation, or a
// read error. It returns the total number of documents streamed.
func (s *DocumentStreamer) Stream(ctx context.Context, batchCh chan<- *Batch) (int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return 0, errs.NewIOError(s.path, err)
	}
	defer file.Close()

	var bar progressBar
	if s.showBar {
		if info, statErr := file.Stat(); statErr == nil {
			bar = display.NewCorpusProgressBar(estimateLineCount(info.Size()))
		}
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, constants.ScannerInitialBufSize), constants.ScannerMaxBufSize)

	total := 0
	lineNo := 0
	current := &Batch{Documents: make([]core.RawDocument, 0, s.batchSize)}

	flush := func() error {
		if len(current.Documents) == 0 {
			return nil
		}
		select {
		case batchCh <- current:
		case <-ctx.Done():
			return ctx.Err()
		}
		current = &Batch{Documents: make([]core.RawDocument, 0, s.batchSize)}
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var doc core.RawDocument
		if err := decodeDocument(line, &doc); err != nil {
			return total, errs.NewCorpusError(s.path, lineNo, err)
		}

		current.Documents = append(current.Documents, doc)
		total++
		if bar != nil {
			_ = bar.Add(1)
		}

		if len(current.Documents) >= s.batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return total, errs.NewCorpusError(s.path, lineNo, err)
	}

	if err := flush(); err != nil {
		return total, err
	}

	for i := 0; i < s.numWorkers; i++ {
		select {
		case batchCh <- nil:
		case <-ctx.Done():
			return total, ctx.Err()
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	logger.Infof("streamed %d documents from %s", total, s.path)
	return total, nil
}

// progressBar is the subset of *progressbar.ProgressBar the streamer
// needs, kept as an interface so tests can stream without a terminal.
type progressBar interface {
	Add(int) error
	Finish() error
}

// estimateLineCount guesses a document count from file size for the
// progress bar's total; the bar's percentage is approximate and only
// cosmetic, so a rough estimate (average 200 bytes/doc) is sufficient.
func estimateLineCount(sizeBytes int64) int64 {
	const avgBytesPerDoc = 200
	if sizeBytes <= 0 {
		return -1
	}
	return sizeBytes / avgBytesPerDoc
}

func decodeDocument(line []byte, doc *core.RawDocument) error {
	if err := json.Unmarshal(line, doc); err != nil {
		return fmt.Errorf("decode corpus line: %w", err)
	}
	return nil
}
