package indexing

import (
	"bufio"
	"encoding/json"
	"os"

	"mneme-index/internal/constants"
	"mneme-index/internal/core"
	"mneme-index/internal/errs"
)

// summarizeIndex does a single streaming pass over the final inverted
// index to report how many posting lists it holds and their average
// length, without loading the whole file into memory.
func summarizeIndex(path string) (numLists int, avgListSize float64, err error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return 0, 0, errs.NewIOError(path, openErr)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, constants.ScannerInitialBufSize), constants.ScannerMaxBufSize)

	totalPostings := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record core.PostingList
		if unmarshalErr := json.Unmarshal(line, &record); unmarshalErr != nil {
			return 0, 0, errs.NewIOError(path, unmarshalErr)
		}
		numLists++
		totalPostings += len(record.Postings)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return 0, 0, errs.NewIOError(path, scanErr)
	}

	if numLists > 0 {
		avgListSize = float64(totalPostings) / float64(numLists)
	}
	return numLists, avgListSize, nil
}

// statsJSON renders indexing statistics as pretty-printed JSON, matching
// the field names the processor reads back verbatim.
func statsJSON(stats core.IndexingStatistics) ([]byte, error) {
	return json.MarshalIndent(stats, "", "  ")
}
