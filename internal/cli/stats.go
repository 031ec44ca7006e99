package cli

import (
	"encoding/json"
	"os"

	"mneme-index/internal/core"
	"mneme-index/internal/errs"
)

// loadIndexingStatistics reads indexing_statistics.json, the same file the
// indexer wrote, pulling the two fields the processor needs to score
// queries: the corpus size and the average document length.
func loadIndexingStatistics(path string) (core.IndexingStatistics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.IndexingStatistics{}, errs.NewIOError(path, err)
	}
	var stats core.IndexingStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return core.IndexingStatistics{}, errs.NewQueryError("", err)
	}
	return stats, nil
}
