// Package query loads the artifacts an indexing run produced (lexicon,
// inverted index, document index, statistics), scores candidate documents
// against a batch of queries, and ranks the results.
package query

import (
	"bufio"
	"os"
	"strings"

	"mneme-index/internal/constants"
	"mneme-index/internal/errs"
	"mneme-index/internal/tokenizer"
)

// LoadQueries reads one query per non-blank line from path, matching the
// reference loader's strip-and-skip-blank behavior.
func LoadQueries(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.NewQueryError("", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, constants.ScannerInitialBufSize), constants.ScannerMaxBufSize)

	var queries []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewQueryError(path, err)
	}
	return queries, nil
}

// Query pairs the original query text with its tokenized form, produced by
// the same tokenizer pipeline the indexer used so posting-list lookups
// line up.
type Query struct {
	Text   string
	Tokens []string
}

// TokenizeQueries tokenizes every query with the shared tokenizer.
func TokenizeQueries(queries []string) []Query {
	out := make([]Query, len(queries))
	for i, q := range queries {
		out[i] = Query{Text: q, Tokens: tokenizer.Tokenize(q)}
	}
	return out
}

// NeededTokens returns the union of every query's token set, used to bound
// the one-pass filtered scans over the lexicon and inverted index.
func NeededTokens(queries []Query) map[string]bool {
	needed := make(map[string]bool)
	for _, q := range queries {
		for _, tok := range q.Tokens {
			needed[tok] = true
		}
	}
	return needed
}
