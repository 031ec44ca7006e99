package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexerCommandMetadata(t *testing.T) {
	cmd := NewIndexerCommand()
	assert.Equal(t, "indexer", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestIndexerCommandRejectsNonJSONLCorpus(t *testing.T) {
	cmd := NewIndexerCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--memory_limit_mb", "2000",
		"--corpus_path", "corpus.txt",
		"--index_dir", t.TempDir(),
	})
	assert.Error(t, cmd.Execute())
}

func TestIndexerCommandEndToEnd(t *testing.T) {
	corpusPath := filepath.Join(t.TempDir(), "corpus.jsonl")
	require.NoError(t, os.WriteFile(corpusPath, []byte(
		`{"id":"doc-1","text":"alpha beta"}`+"\n"+`{"id":"doc-2","text":"beta gamma"}`+"\n",
	), 0o644))
	indexDir := t.TempDir()

	cmd := NewIndexerCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--memory_limit_mb", "2000",
		"--corpus_path", corpusPath,
		"--index_dir", indexDir,
		"--quiet",
	})

	require.NoError(t, cmd.Execute())

	for _, name := range []string{"final_inverted_index.jsonl", "lexicon.jsonl", "document_index.jsonl", "indexing_statistics.json"} {
		_, err := os.Stat(filepath.Join(indexDir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}
