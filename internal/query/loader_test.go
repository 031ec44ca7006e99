package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadQueriesSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha beta\n\n  \ngamma\n"), 0o644))

	queries, err := LoadQueries(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha beta", "gamma"}, queries)
}

func TestLoadQueriesMissingFile(t *testing.T) {
	_, err := LoadQueries(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestTokenizeQueriesAndNeededTokens(t *testing.T) {
	queries := TokenizeQueries([]string{"running fast", "fast cars"})
	needed := NeededTokens(queries)
	assert.True(t, needed["run"] || needed["running"])
	assert.True(t, needed["fast"])
	assert.True(t, needed["car"] || needed["cars"])
}
