package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bm25", cfg.Ranker)
	assert.Equal(t, 1.5, cfg.K1)
	assert.Equal(t, 0.75, cfg.B)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, 0, cfg.WorkerCount)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "batch_size = 5000\nranker = \"tfidf\"\nk1 = 1.2\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.BatchSize)
	assert.Equal(t, "tfidf", cfg.Ranker)
	assert.Equal(t, 1.2, cfg.K1)
	// Fields absent from the file keep their Default() value.
	assert.Equal(t, 0.75, cfg.B)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
