package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingTupleWireFormat(t *testing.T) {
	p := Posting{DocID: "doc-1", TermFrequency: 3}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `["doc-1",3]`, string(data))

	var decoded Posting
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)
}

func TestPostingAcceptsNumericDocID(t *testing.T) {
	var p Posting
	require.NoError(t, json.Unmarshal([]byte(`[42,7]`), &p))
	assert.Equal(t, DocID("42"), p.DocID)
	assert.Equal(t, 7, p.TermFrequency)
}

func TestPostingListRoundTrip(t *testing.T) {
	pl := PostingList{
		Token: "machine",
		Postings: []Posting{
			{DocID: "doc-1", TermFrequency: 3},
			{DocID: "doc-7", TermFrequency: 1},
		},
	}

	data, err := json.Marshal(pl)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"machine","postings":[["doc-1",3],["doc-7",1]]}`, string(data))

	var decoded PostingList
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, pl, decoded)
}

func TestLexiconEntryFieldNames(t *testing.T) {
	entry := LexiconEntry{Token: "learning", DocumentFrequency: 4, TermFrequencyCorpus: 9}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"learning","document_frequency":4,"term_frequency_corpus":9}`, string(data))
}

func TestDocumentIndexEntryFieldNames(t *testing.T) {
	entry := DocumentIndexEntry{ID: "doc-1", CharacterCount: 120, TokenCount: 18}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"doc-1","character_count":120,"token_count":18}`, string(data))
}

func TestIndexingStatisticsMatchesProcessorKeys(t *testing.T) {
	stats := IndexingStatistics{
		NumberOfDocuments:        1000,
		AverageTokensPerDocument: 42.5,
		IndexSizeMB:              3.2,
		ElapsedSeconds:           12.8,
		NumberOfLists:            5000,
		AverageListSize:          8.5,
	}

	data, err := json.Marshal(stats)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))

	// These two keys are load-bearing: the processor reads them verbatim
	// from indexing_statistics.json.
	assert.Equal(t, float64(1000), generic["Number of Documents"])
	assert.Equal(t, 42.5, generic["Average Tokens per Document"])
}

func TestQueryResultEmptyResultsSerializesAsArray(t *testing.T) {
	result := QueryResult{Query: "delta", Results: []ScoredResult{}}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Query":"delta","Results":[]}`, string(data))
}

func TestScoredResultFieldNames(t *testing.T) {
	result := ScoredResult{ID: "doc-9", Score: 3.14}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ID":"doc-9","Score":3.14}`, string(data))
	assert.Equal(t, 3.14, result.GetScore())
}

func TestRawDocumentAcceptsStringOrNumericID(t *testing.T) {
	var docString RawDocument
	require.NoError(t, json.Unmarshal([]byte(`{"id":"doc-42","text":"the quick brown fox"}`), &docString))
	assert.Equal(t, DocID("doc-42"), docString.ID)
	assert.Equal(t, "the quick brown fox", docString.Text)

	var docNumeric RawDocument
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"text":"jumps over the lazy dog","ignored":true}`), &docNumeric))
	assert.Equal(t, DocID("42"), docNumeric.ID)
}
