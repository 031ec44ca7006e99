// Package core defines the wire-level record shapes shared by the indexer
// and processor pipelines: postings, the final inverted index, the lexicon,
// the document index, and the indexing-run statistics document. Every type
// here round-trips through JSON Lines exactly as spec'd — field names and
// shapes are a contract, not a style choice.
package core

import (
	"encoding/json"
	"fmt"
)

// DocID is a document identifier. The corpus may supply it as either a
// JSON string or a JSON number; DocID always normalizes to a string so the
// rest of the pipeline never has to care which it started as.
type DocID string

// UnmarshalJSON accepts both a quoted string and a bare JSON number.
func (d *DocID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = DocID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("docid must be a string or number: %w", err)
	}
	*d = DocID(n.String())
	return nil
}

// MarshalJSON always emits DocID as a JSON string, since downstream
// consumers (lexicon, document index, query results) treat it as opaque
// text regardless of its original corpus representation.
func (d DocID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// Posting is one (docid, term_frequency) pair inside a token's posting
// list. TermFrequency is always >= 1; a posting is never emitted for a
// token absent from a document. On the wire it is a 2-element JSON array
// `[docid, tf]`, not an object — the final index and partial index files
// both use this compact tuple form.
type Posting struct {
	DocID         DocID
	TermFrequency int
}

// MarshalJSON renders the posting as the contractual [docid, tf] tuple.
func (p Posting) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.DocID, p.TermFrequency})
}

// UnmarshalJSON parses the contractual [docid, tf] tuple.
func (p *Posting) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("posting must be a 2-element array: %w", err)
	}
	var docID DocID
	if err := docID.UnmarshalJSON(tuple[0]); err != nil {
		return err
	}
	var tf int
	if err := json.Unmarshal(tuple[1], &tf); err != nil {
		return fmt.Errorf("posting term frequency: %w", err)
	}
	p.DocID = docID
	p.TermFrequency = tf
	return nil
}

// PostingList is the ordered sequence of postings for a single token, as
// written in both partial index files and the final merged index.
type PostingList struct {
	Token    string    `json:"token"`
	Postings []Posting `json:"postings"`
}

// LexiconEntry summarizes one token's corpus-wide statistics: how many
// documents contain it, and how many times it occurs across all of them.
type LexiconEntry struct {
	Token               string `json:"token"`
	DocumentFrequency   int    `json:"document_frequency"`
	TermFrequencyCorpus int    `json:"term_frequency_corpus"`
}

// DocumentIndexEntry records per-document length statistics needed at
// query time for BM25's document-length normalization term.
type DocumentIndexEntry struct {
	ID             DocID `json:"id"`
	CharacterCount int   `json:"character_count"`
	TokenCount     int   `json:"token_count"`
}

// IndexingStatistics is the single JSON document written at the end of an
// indexing run. "Number of Documents" and "Average Tokens per Document"
// are spelled exactly as the query-time processor expects them; the
// remaining fields are descriptive and only used for CLI reporting.
type IndexingStatistics struct {
	NumberOfDocuments        int     `json:"Number of Documents"`
	AverageTokensPerDocument float64 `json:"Average Tokens per Document"`

	IndexSizeMB     float64 `json:"index_size_mb"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`
	NumberOfLists   int     `json:"number_of_lists"`
	AverageListSize float64 `json:"average_list_size"`
}

// RawDocument is one corpus record as read off the input JSONL stream,
// before tokenization. Extra fields in the source line are ignored.
type RawDocument struct {
	ID   DocID  `json:"id"`
	Text string `json:"text"`
}

// ScoredResult is one ranked hit returned for a query.
type ScoredResult struct {
	ID    DocID   `json:"ID"`
	Score float64 `json:"Score"`
}

// GetScore implements utils.Scored so ScoredResult can be ranked with the
// generic top-k heap.
func (r ScoredResult) GetScore() float64 { return r.Score }

// QueryResult is the JSON object printed for one processed query.
type QueryResult struct {
	Query   string         `json:"Query"`
	Results []ScoredResult `json:"Results"`
}
