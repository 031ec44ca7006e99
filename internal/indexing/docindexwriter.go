package indexing

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mneme-index/internal/core"
	"mneme-index/internal/errs"
)

// DocIndexWriter appends one core.DocumentIndexEntry line per document a
// worker processes, into a per-worker fragment file. The orchestrator
// concatenates every worker's fragment into the final document_index.jsonl
// once all workers finish, since document-index entries never need merging
// across workers the way postings do.
type DocIndexWriter struct {
	path   string
	file   *os.File
	writer *bufio.Writer
}

// NewDocIndexWriter creates (truncating if present) docindex_<workerID>.jsonl
// under dir.
func NewDocIndexWriter(dir string, workerID int) (*DocIndexWriter, error) {
	path := filepath.Join(dir, fmt.Sprintf("docindex_%d.jsonl", workerID))
	file, err := os.Create(path)
	if err != nil {
		return nil, errs.NewIOError(path, err)
	}
	return &DocIndexWriter{path: path, file: file, writer: bufio.NewWriter(file)}, nil
}

// Path returns the fragment file's location.
func (w *DocIndexWriter) Path() string {
	return w.path
}

// WriteEntry appends one document-index entry and flushes.
func (w *DocIndexWriter) WriteEntry(entry core.DocumentIndexEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal document index entry for %q: %w", entry.ID, err)
	}
	if _, err := w.writer.Write(line); err != nil {
		return errs.NewIOError(w.path, err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return errs.NewIOError(w.path, err)
	}
	return w.writer.Flush()
}

// Close flushes and closes the underlying file.
func (w *DocIndexWriter) Close() error {
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return errs.NewIOError(w.path, err)
	}
	if err := w.file.Close(); err != nil {
		return errs.NewIOError(w.path, err)
	}
	return nil
}
