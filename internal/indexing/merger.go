package indexing

import (
	"bufio"
	"container/heap"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mneme-index/internal/core"
	"mneme-index/internal/errs"
	"mneme-index/internal/logger"
)

// IndexMerger performs a streaming k-way merge of every worker's partial
// index files into one final_inverted_index.jsonl plus a parallel
// lexicon.jsonl, without ever holding more than one term's postings from
// each source file in memory at a time.
type IndexMerger struct {
	dir         string
	partialPath []string
}

// NewIndexMerger creates a merger over the given partial-index file paths,
// all assumed to live under dir alongside the output files it writes.
func NewIndexMerger(dir string, partialPaths []string) *IndexMerger {
	return &IndexMerger{dir: dir, partialPath: partialPaths}
}

// mergeSource tracks one open partial-index file's current record.
type mergeSource struct {
	path    string
	reader  *bufio.Reader
	file    *os.File
	current partialRecord
	atEOF   bool
}

// readNext advances the source to its next line, setting atEOF once the
// file is exhausted.
func (s *mergeSource) readNext() error {
	line, err := s.reader.ReadString('\n')
	if len(line) == 0 {
		s.atEOF = true
		return nil
	}
	if decodeErr := json.Unmarshal([]byte(line), &s.current); decodeErr != nil {
		return fmt.Errorf("decode %q: %w", s.path, decodeErr)
	}
	if err != nil {
		// Last line with no trailing newline: content was already decoded
		// above; treat this source as exhausted from here on.
		s.atEOF = true
	}
	return nil
}

// mergeHeap is a min-heap of sources ordered by their current record's
// token, implementing container/heap.Interface.
type mergeHeap []*mergeSource

func (h mergeHeap) Len() int            { return len(h) }
func (h mergeHeap) Less(i, j int) bool  { return h[i].current.Token < h[j].current.Token }
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(*mergeSource)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// coalesceByDocID sums term frequencies for postings sharing the same
// docid, per spec.md §3's robustness clause — two tied sources can each
// contribute a posting for the same document, and those must be combined
// into one rather than left as separate entries, or document_frequency
// would overcount the true number of distinct documents. Order is
// preserved by first occurrence so output stays deterministic.
func coalesceByDocID(postings []core.Posting) []core.Posting {
	index := make(map[core.DocID]int, len(postings))
	merged := make([]core.Posting, 0, len(postings))
	for _, p := range postings {
		if i, ok := index[p.DocID]; ok {
			merged[i].TermFrequency += p.TermFrequency
			continue
		}
		index[p.DocID] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// Merge reads every partial file's first record, then repeatedly pops the
// smallest token, drains every other source currently tied on that same
// token into one merged posting list, and writes the combined record plus
// its lexicon entry. Sources are refilled in two steps: tied siblings are
// refilled as they're drained inside the tie loop, and the originally
// popped source is refilled last, after the tie loop exits — this
// ordering mirrors the reference merger exactly and matters only for
// which source's EOF is observed first, not for merge correctness.
func (m *IndexMerger) Merge() (indexPath, lexiconPath string, err error) {
	sources := make([]*mergeSource, 0, len(m.partialPath))
	defer func() {
		for _, s := range sources {
			s.file.Close()
		}
	}()

	for _, path := range m.partialPath {
		file, openErr := os.Open(path)
		if openErr != nil {
			return "", "", errs.NewMergeError(path, openErr)
		}
		src := &mergeSource{path: path, file: file, reader: bufio.NewReader(file)}
		if readErr := src.readNext(); readErr != nil {
			return "", "", errs.NewMergeError(path, readErr)
		}
		sources = append(sources, src)
	}

	h := &mergeHeap{}
	heap.Init(h)
	for _, src := range sources {
		if !src.atEOF {
			heap.Push(h, src)
		}
	}

	indexPath = filepath.Join(m.dir, "final_inverted_index.jsonl")
	lexiconPath = filepath.Join(m.dir, "lexicon.jsonl")

	indexFile, err := os.Create(indexPath)
	if err != nil {
		return "", "", errs.NewIOError(indexPath, err)
	}
	defer indexFile.Close()
	indexWriter := bufio.NewWriter(indexFile)

	lexiconFile, err := os.Create(lexiconPath)
	if err != nil {
		return "", "", errs.NewIOError(lexiconPath, err)
	}
	defer lexiconFile.Close()
	lexiconWriter := bufio.NewWriter(lexiconFile)

	for h.Len() > 0 {
		popped := heap.Pop(h).(*mergeSource)
		term := popped.current.Token
		merged := append([]core.Posting(nil), popped.current.Postings...)

		for h.Len() > 0 && (*h)[0].current.Token == term {
			tied := heap.Pop(h).(*mergeSource)
			merged = append(merged, tied.current.Postings...)
			if readErr := tied.readNext(); readErr != nil {
				return "", "", errs.NewMergeError(tied.path, readErr)
			}
			if !tied.atEOF {
				heap.Push(h, tied)
			}
		}

		if readErr := popped.readNext(); readErr != nil {
			return "", "", errs.NewMergeError(popped.path, readErr)
		}
		if !popped.atEOF {
			heap.Push(h, popped)
		}

		merged = coalesceByDocID(merged)

		docFrequency := len(merged)
		termFrequencyCorpus := 0
		for _, p := range merged {
			termFrequencyCorpus += p.TermFrequency
		}

		recordLine, marshalErr := json.Marshal(core.PostingList{Token: term, Postings: merged})
		if marshalErr != nil {
			return "", "", fmt.Errorf("marshal merged record for token %q: %w", term, marshalErr)
		}
		if _, writeErr := indexWriter.Write(append(recordLine, '\n')); writeErr != nil {
			return "", "", errs.NewIOError(indexPath, writeErr)
		}

		lexiconLine, marshalErr := json.Marshal(core.LexiconEntry{
			Token:               term,
			DocumentFrequency:   docFrequency,
			TermFrequencyCorpus: termFrequencyCorpus,
		})
		if marshalErr != nil {
			return "", "", fmt.Errorf("marshal lexicon entry for token %q: %w", term, marshalErr)
		}
		if _, writeErr := lexiconWriter.Write(append(lexiconLine, '\n')); writeErr != nil {
			return "", "", errs.NewIOError(lexiconPath, writeErr)
		}
	}

	if err := indexWriter.Flush(); err != nil {
		return "", "", errs.NewIOError(indexPath, err)
	}
	if err := lexiconWriter.Flush(); err != nil {
		return "", "", errs.NewIOError(lexiconPath, err)
	}

	for _, path := range m.partialPath {
		if err := os.Remove(path); err != nil {
			logger.Warnf("failed to remove partial index %q: %v", path, err)
		}
	}

	return indexPath, lexiconPath, nil
}
