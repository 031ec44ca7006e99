// Package config loads the optional TOML defaults file shared by the
// indexer and processor CLIs. CLI flags always win over anything read
// here; a missing file is not an error, it just means every field keeps
// its hardcoded default.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"mneme-index/internal/constants"
	"mneme-index/internal/logger"
	"mneme-index/internal/utils"
)

// Config holds the subset of tunables worth overriding without a flag:
// batch size, worker concurrency, queue depth and the BM25/TF-IDF scoring
// parameters. Indexer and processor each read only the fields relevant to
// them.
type Config struct {
	BatchSize   int     `toml:"batch_size"`
	WorkerCount int     `toml:"worker_count"`
	QueueDepth  int     `toml:"queue_depth"`
	Ranker      string  `toml:"ranker"`
	K1          float64 `toml:"k1"`
	B           float64 `toml:"b"`
	TopK        int     `toml:"top_k"`
}

// Default returns the hardcoded fallback configuration, used whenever no
// config file is present or a field isn't present in the file read.
func Default() Config {
	return Config{
		BatchSize:   constants.DefaultBatchSize,
		WorkerCount: 0, // 0 means "derive from runtime.NumCPU(), capped at MaxWorkers"
		QueueDepth:  constants.DefaultQueueDepth,
		Ranker:      "bm25",
		K1:          constants.DefaultBM25K1,
		B:           constants.DefaultBM25B,
		TopK:        constants.DefaultTopK,
	}
}

// Load reads and parses the TOML config file at path, merging its values
// on top of Default(). A missing file is not an error: Load logs a debug
// line and returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := utils.ExpandFilePath(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debugf("config file not found at %s, using defaults", expanded)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", expanded, err)
	}

	return cfg, nil
}
