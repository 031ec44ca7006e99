package indexing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mneme-index/internal/core"
)

func TestIndexDocumentAccumulatesPostings(t *testing.T) {
	idx := NewInMemoryIndex(1000)

	flushed := idx.IndexDocument("doc-1", map[string]int{"alpha": 2, "beta": 1})
	assert.False(t, flushed)

	snap := idx.Snapshot()
	assert.Equal(t, []core.Posting{{DocID: "doc-1", TermFrequency: 2}}, snap["alpha"])
	assert.Equal(t, []core.Posting{{DocID: "doc-1", TermFrequency: 1}}, snap["beta"])
}

func TestIndexDocumentSignalsFlushAtThreshold(t *testing.T) {
	idx := NewInMemoryIndex(2)

	flushed := idx.IndexDocument("doc-1", map[string]int{"alpha": 1})
	assert.False(t, flushed)

	flushed = idx.IndexDocument("doc-2", map[string]int{"beta": 1})
	assert.True(t, flushed)
}

func TestResetClearsAccumulatedState(t *testing.T) {
	idx := NewInMemoryIndex(1000)
	idx.IndexDocument("doc-1", map[string]int{"alpha": 1})
	assert.False(t, idx.IsEmpty())

	idx.Reset()
	assert.True(t, idx.IsEmpty())
	assert.Empty(t, idx.Snapshot())
}

func TestMaxEntriesForBudgetScalesWithMemory(t *testing.T) {
	small := MaxEntriesForBudget(1)
	large := MaxEntriesForBudget(10)
	assert.Greater(t, large, small)
	// 1 MiB / 56 bytes and 10 MiB / 56 bytes, rounded down.
	assert.Equal(t, 18724, small)
	assert.Equal(t, 187245, large)
}
