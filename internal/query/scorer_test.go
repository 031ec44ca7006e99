package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"mneme-index/internal/core"
)

func sampleLexicon() map[string]core.LexiconEntry {
	return map[string]core.LexiconEntry{
		"alpha": {Token: "alpha", DocumentFrequency: 2, TermFrequencyCorpus: 10},
	}
}

func TestScoreTokenBM25MatchesFormula(t *testing.T) {
	docTokens := map[core.DocID]int{"doc-1": 8}
	scorer := NewScorer(RankerBM25, 1.5, 0.75, 4, 10, sampleLexicon(), docTokens)

	got := scorer.ScoreToken("alpha", 3, "doc-1")

	idf := math.Log(1 + (4.0-2+0.5)/(2+0.5))
	want := idf * (3 * (1.5 + 1)) / (3 + 1.5*(1-0.75+0.75*(8.0/10)))
	assert.InDelta(t, want, got, 1e-9)
}

func TestScoreTokenTFIDFMatchesFormula(t *testing.T) {
	docTokens := map[core.DocID]int{"doc-1": 8}
	scorer := NewScorer(RankerTFIDF, 1.5, 0.75, 4, 10, sampleLexicon(), docTokens)

	got := scorer.ScoreToken("alpha", 3, "doc-1")

	idf := math.Log((4.0 + 1) / (2 + 1))
	want := (3.0 / 8.0) * idf
	assert.InDelta(t, want, got, 1e-9)
}

func TestScoreTokenUnknownTokenScoresZero(t *testing.T) {
	scorer := NewScorer(RankerBM25, 1.5, 0.75, 4, 10, sampleLexicon(), map[core.DocID]int{"doc-1": 8})
	assert.Equal(t, 0.0, scorer.ScoreToken("missing", 1, "doc-1"))
}

func TestScoreTokenUnknownDocumentScoresZero(t *testing.T) {
	scorer := NewScorer(RankerBM25, 1.5, 0.75, 4, 10, sampleLexicon(), map[core.DocID]int{})
	assert.Equal(t, 0.0, scorer.ScoreToken("alpha", 1, "doc-1"))
}

func TestIDFCachedPerRanker(t *testing.T) {
	scorer := NewScorer(RankerBM25, 1.5, 0.75, 4, 10, sampleLexicon(), map[core.DocID]int{"doc-1": 8})
	first, _ := scorer.idf("alpha")
	second, _ := scorer.idf("alpha")
	assert.Equal(t, first, second)
	assert.Len(t, scorer.idfCache, 1)
}

func TestParseRankerRejectsUnknown(t *testing.T) {
	_, err := ParseRanker("unknown")
	assert.Error(t, err)

	r, err := ParseRanker("bm25")
	assert.NoError(t, err)
	assert.Equal(t, RankerBM25, r)
}
