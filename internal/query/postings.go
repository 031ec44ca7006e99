package query

import (
	"bufio"
	"encoding/json"
	"os"

	"mneme-index/internal/constants"
	"mneme-index/internal/core"
	"mneme-index/internal/errs"
)

// LoadLexiconFiltered does one streaming pass over the lexicon, keeping
// only the entries for tokens present in needed. Mirrors the reference
// processor's generic filtered-JSONL loader, specialized here to avoid a
// reflection-based generic decoder for a three-shape file set.
func LoadLexiconFiltered(path string, needed map[string]bool) (map[string]core.LexiconEntry, error) {
	out := make(map[string]core.LexiconEntry)
	err := scanFilteredJSONL(path, func(line []byte) error {
		var entry core.LexiconEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return err
		}
		if needed[entry.Token] {
			out[entry.Token] = entry
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewQueryError("", err)
	}
	return out, nil
}

// LoadPostingsFiltered does one streaming pass over the final inverted
// index, keeping only the posting lists for tokens present in needed.
func LoadPostingsFiltered(path string, needed map[string]bool) (map[string][]core.Posting, error) {
	out := make(map[string][]core.Posting)
	err := scanFilteredJSONL(path, func(line []byte) error {
		var list core.PostingList
		if err := json.Unmarshal(line, &list); err != nil {
			return err
		}
		if needed[list.Token] {
			out[list.Token] = list.Postings
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewQueryError("", err)
	}
	return out, nil
}

// LoadDocumentIndexFiltered does one streaming pass over document_index.jsonl,
// keeping only the entries whose ID is present in needed.
func LoadDocumentIndexFiltered(path string, needed map[core.DocID]bool) (map[core.DocID]core.DocumentIndexEntry, error) {
	out := make(map[core.DocID]core.DocumentIndexEntry)
	err := scanFilteredJSONL(path, func(line []byte) error {
		var entry core.DocumentIndexEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return err
		}
		if needed[entry.ID] {
			out[entry.ID] = entry
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewQueryError("", err)
	}
	return out, nil
}

// scanFilteredJSONL scans path line by line, handing each non-blank line
// to decode. It is the shared engine behind every *Filtered loader above.
func scanFilteredJSONL(path string, decode func(line []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, constants.ScannerInitialBufSize), constants.ScannerMaxBufSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
