package indexing

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mneme-index/internal/core"
	"mneme-index/internal/errs"
)

// PartialIndexWriter writes one file per flushed InMemoryIndex snapshot,
// named index_<workerID>_<seq>.jsonl. Each file holds exactly one
// token-sorted block, so every partial file the merger reads is, on its
// own, ascending by token end to end — a worker that flushes more than
// once never produces a single file with several independently-sorted
// blocks concatenated together, which would violate the k-way merge's
// global-ascending-order assumption.
type PartialIndexWriter struct {
	dir      string
	workerID int
	seq      int
	paths    []string
}

// NewPartialIndexWriter creates a writer for workerID's flushes under dir.
// No file is created until the first WriteSnapshot call.
func NewPartialIndexWriter(dir string, workerID int) (*PartialIndexWriter, error) {
	return &PartialIndexWriter{dir: dir, workerID: workerID}, nil
}

// Paths returns every partial file this writer has produced so far, in
// flush order, used by the merger to discover every worker's output.
func (w *PartialIndexWriter) Paths() []string {
	return w.paths
}

// partialRecord is the on-disk shape of one partial-index line.
type partialRecord struct {
	Token    string         `json:"token"`
	Postings []core.Posting `json:"postings"`
}

// WriteSnapshot writes postings, tokens sorted ascending, to a fresh
// index_<workerID>_<seq>.jsonl file and closes it, so the file is
// complete and self-sorted the instant this call returns.
func (w *PartialIndexWriter) WriteSnapshot(postings map[string][]core.Posting) error {
	path := filepath.Join(w.dir, fmt.Sprintf("index_%d_%d.jsonl", w.workerID, w.seq))
	file, err := os.Create(path)
	if err != nil {
		return errs.NewIOError(path, err)
	}
	writer := bufio.NewWriter(file)

	tokens := make([]string, 0, len(postings))
	for token := range postings {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		line, marshalErr := json.Marshal(partialRecord{Token: token, Postings: postings[token]})
		if marshalErr != nil {
			file.Close()
			return fmt.Errorf("marshal partial record for token %q: %w", token, marshalErr)
		}
		if _, writeErr := writer.Write(line); writeErr != nil {
			file.Close()
			return errs.NewIOError(path, writeErr)
		}
		if writeErr := writer.WriteByte('\n'); writeErr != nil {
			file.Close()
			return errs.NewIOError(path, writeErr)
		}
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return errs.NewIOError(path, err)
	}
	if err := file.Close(); err != nil {
		return errs.NewIOError(path, err)
	}

	w.seq++
	w.paths = append(w.paths, path)
	return nil
}

// Close is a no-op kept so callers can defer it uniformly with other
// writers; every file WriteSnapshot creates is already flushed and
// closed by the time it returns.
func (w *PartialIndexWriter) Close() error {
	return nil
}
