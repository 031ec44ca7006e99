package query

import (
	"math"

	"mneme-index/internal/core"
	"mneme-index/internal/errs"
)

// Ranker selects the relevance formula a Scorer applies.
type Ranker string

const (
	RankerBM25  Ranker = "bm25"
	RankerTFIDF Ranker = "tfidf"
)

// idfCacheKey is the (ranker, token) pair the IDF cache is keyed on, since
// the two rankers compute different IDF values for the same token.
type idfCacheKey struct {
	ranker Ranker
	token  string
}

// Scorer computes BM25 or TF-IDF relevance scores for (token, document)
// pairs, caching each token's IDF value per ranker since it only depends
// on corpus-wide document frequency, not on any individual document.
type Scorer struct {
	ranker             Ranker
	k1                 float64
	b                  float64
	numDocuments       int
	avgDocLength       float64
	lexicon            map[string]core.LexiconEntry
	documentTokenCount map[core.DocID]int
	idfCache           map[idfCacheKey]float64
}

// NewScorer creates a Scorer over the given lexicon and corpus statistics.
// documentTokenCount maps a document to its token count, used for BM25's
// length-normalization term.
func NewScorer(ranker Ranker, k1, b float64, numDocuments int, avgDocLength float64, lexicon map[string]core.LexiconEntry, documentTokenCount map[core.DocID]int) *Scorer {
	return &Scorer{
		ranker:             ranker,
		k1:                 k1,
		b:                  b,
		numDocuments:       numDocuments,
		avgDocLength:       avgDocLength,
		lexicon:            lexicon,
		documentTokenCount: documentTokenCount,
		idfCache:           make(map[idfCacheKey]float64),
	}
}

// idf returns the cached or newly computed IDF for token under the
// scorer's configured ranker. A token absent from the lexicon has no
// corpus-wide document frequency to compute from, so it scores zero.
func (s *Scorer) idf(token string) (float64, bool) {
	key := idfCacheKey{ranker: s.ranker, token: token}
	if v, ok := s.idfCache[key]; ok {
		return v, true
	}

	entry, ok := s.lexicon[token]
	if !ok {
		return 0, false
	}

	df := float64(entry.DocumentFrequency)
	n := float64(s.numDocuments)

	var v float64
	switch s.ranker {
	case RankerBM25:
		v = math.Log(1 + (n-df+0.5)/(df+0.5))
	default:
		v = math.Log((n + 1) / (df + 1))
	}

	s.idfCache[key] = v
	return v, true
}

// ScoreToken returns token's relevance contribution for docID, given tf
// (the term's frequency within that document). It returns 0 when the
// token is absent from the lexicon or the document's token count is
// unknown, matching the reference scorer's zero-contribution fallback
// rather than erroring.
func (s *Scorer) ScoreToken(token string, tf int, docID core.DocID) float64 {
	idf, ok := s.idf(token)
	if !ok || tf <= 0 {
		return 0
	}

	tokenCount, ok := s.documentTokenCount[docID]
	if !ok || tokenCount <= 0 {
		return 0
	}

	tfF := float64(tf)
	switch s.ranker {
	case RankerBM25:
		denominator := tfF + s.k1*(1-s.b+s.b*(float64(tokenCount)/s.avgDocLength))
		if denominator == 0 {
			return 0
		}
		return idf * (tfF * (s.k1 + 1)) / denominator
	default:
		return (tfF / float64(tokenCount)) * idf
	}
}

// ParseRanker validates a ranker name from a CLI flag or config value.
func ParseRanker(name string) (Ranker, error) {
	switch Ranker(name) {
	case RankerBM25:
		return RankerBM25, nil
	case RankerTFIDF:
		return RankerTFIDF, nil
	default:
		return "", errs.NewConfigurationError("ranker", "must be \"bm25\" or \"tfidf\", got "+name)
	}
}
