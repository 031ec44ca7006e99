package indexing

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mneme-index/internal/core"
)

func TestDocIndexWriterAppendsEntries(t *testing.T) {
	dir := t.TempDir()
	w, err := NewDocIndexWriter(dir, 2)
	require.NoError(t, err)

	require.NoError(t, w.WriteEntry(core.DocumentIndexEntry{ID: "doc-1", CharacterCount: 40, TokenCount: 8}))
	require.NoError(t, w.WriteEntry(core.DocumentIndexEntry{ID: "doc-2", CharacterCount: 12, TokenCount: 3}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"doc-1"`)
	assert.Contains(t, string(data), `"id":"doc-2"`)
}

func TestConcatenateDocIndexesMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	w1, err := NewDocIndexWriter(dir, 0)
	require.NoError(t, err)
	require.NoError(t, w1.WriteEntry(core.DocumentIndexEntry{ID: "doc-1", CharacterCount: 1, TokenCount: 1}))
	require.NoError(t, w1.Close())

	w2, err := NewDocIndexWriter(dir, 1)
	require.NoError(t, err)
	require.NoError(t, w2.WriteEntry(core.DocumentIndexEntry{ID: "doc-2", CharacterCount: 2, TokenCount: 2}))
	require.NoError(t, w2.Close())

	outPath, err := ConcatenateDocIndexes(dir, []string{w1.Path(), w2.Path()})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"doc-1","character_count":1,"token_count":1}
{"id":"doc-2","character_count":2,"token_count":2}
`, string(data))

	_, statErr := os.Stat(w1.Path())
	assert.True(t, os.IsNotExist(statErr))
}
