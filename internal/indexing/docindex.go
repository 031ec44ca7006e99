package indexing

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"mneme-index/internal/errs"
	"mneme-index/internal/logger"
)

// ConcatenateDocIndexes streams every worker's document-index fragment
// into one document_index.jsonl, in fragment order. Entries never need
// merging across workers the way postings do, since each document is
// only ever processed by a single worker, so this is a plain concatenate
// rather than a k-way merge.
func ConcatenateDocIndexes(dir string, fragmentPaths []string) (string, error) {
	outPath := filepath.Join(dir, "document_index.jsonl")
	out, err := os.Create(outPath)
	if err != nil {
		return "", errs.NewIOError(outPath, err)
	}
	defer out.Close()
	writer := bufio.NewWriter(out)

	for _, path := range fragmentPaths {
		if err := appendFragment(writer, path); err != nil {
			return "", err
		}
	}

	if err := writer.Flush(); err != nil {
		return "", errs.NewIOError(outPath, err)
	}

	for _, path := range fragmentPaths {
		if err := os.Remove(path); err != nil {
			logger.Warnf("failed to remove document index fragment %q: %v", path, err)
		}
	}

	return outPath, nil
}

func appendFragment(dst *bufio.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return errs.NewIOError(path, err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errs.NewIOError(path, err)
	}
	return nil
}
