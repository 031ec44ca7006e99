package indexing

import (
	"mneme-index/internal/constants"
	"mneme-index/internal/core"
)

// InMemoryIndex accumulates postings for one worker between flushes. It
// maps token to a growing list of (docid, tf) pairs and tracks how many
// postings have been appended since the last reset, flushing once that
// count crosses maxEntries.
type InMemoryIndex struct {
	postings   map[string][]core.Posting
	entryCount int
	maxEntries int
}

// MaxEntriesForBudget derives max_entries from a worker's memory budget in
// MB and the policy constant constants.BytesPerPosting — see that
// constant's doc comment for the estimate's rationale.
func MaxEntriesForBudget(memoryBudgetMB int) int {
	return (memoryBudgetMB * constants.OneMB) / constants.BytesPerPosting
}

// NewInMemoryIndex creates an index that signals a flush once entryCount
// reaches maxEntries.
func NewInMemoryIndex(maxEntries int) *InMemoryIndex {
	return &InMemoryIndex{
		postings:   make(map[string][]core.Posting),
		maxEntries: maxEntries,
	}
}

// IndexDocument appends one posting per unique token in the document's
// token-frequency map. It returns true once the accumulated posting count
// crosses maxEntries, at which point the caller must flush and Reset.
func (idx *InMemoryIndex) IndexDocument(docID core.DocID, tokenFreq map[string]int) bool {
	crossed := false
	for token, freq := range tokenFreq {
		idx.postings[token] = append(idx.postings[token], core.Posting{DocID: docID, TermFrequency: freq})
		idx.entryCount++

		if idx.entryCount >= idx.maxEntries {
			idx.entryCount = 0
			crossed = true
		}
	}
	return crossed
}

// IsEmpty reports whether any postings have been accumulated since the
// last Reset.
func (idx *InMemoryIndex) IsEmpty() bool {
	return len(idx.postings) == 0
}

// Snapshot returns the read-only view of accumulated postings used by
// PartialIndexWriter during flush. The caller must not mutate the result.
func (idx *InMemoryIndex) Snapshot() map[string][]core.Posting {
	return idx.postings
}

// Reset clears all accumulated postings, ready for the next batch of
// documents.
func (idx *InMemoryIndex) Reset() {
	idx.postings = make(map[string][]core.Posting)
	idx.entryCount = 0
}
