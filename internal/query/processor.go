package query

import (
	"sort"

	"mneme-index/internal/constants"
	"mneme-index/internal/core"
	"mneme-index/internal/utils"
)

// Processor answers a batch of queries against a loaded index: lexicon and
// postings are pre-filtered to the tokens the batch actually needs, and
// the document index is loaded once, filtered to the union of every
// query's candidate document IDs, rather than per query.
type Processor struct {
	ranker       Ranker
	k1, b        float64
	topK         int
	numDocuments int
	avgDocLength float64
	lexicon      map[string]core.LexiconEntry
	postings     map[string][]core.Posting
	docTokens    map[core.DocID]int
}

// NewProcessor creates a processor over already-loaded, already-filtered
// index artifacts.
func NewProcessor(ranker Ranker, k1, b float64, topK, numDocuments int, avgDocLength float64, lexicon map[string]core.LexiconEntry, postings map[string][]core.Posting) *Processor {
	if topK <= 0 {
		topK = constants.DefaultTopK
	}
	return &Processor{
		ranker:       ranker,
		k1:           k1,
		b:            b,
		topK:         topK,
		numDocuments: numDocuments,
		avgDocLength: avgDocLength,
		lexicon:      lexicon,
		postings:     postings,
	}
}

// MatchingDocIDs returns the set-intersection of every query token's
// posting-list document IDs: a conjunctive (AND) match. A query with any
// token absent from the postings has no matches at all.
func MatchingDocIDs(tokens []string, postings map[string][]core.Posting) map[core.DocID]bool {
	if len(tokens) == 0 {
		return map[core.DocID]bool{}
	}

	var result map[core.DocID]bool
	for i, token := range tokens {
		list, ok := postings[token]
		if !ok {
			return map[core.DocID]bool{}
		}

		ids := make(map[core.DocID]bool, len(list))
		for _, p := range list {
			ids[p.DocID] = true
		}

		if i == 0 {
			result = ids
			continue
		}
		for id := range result {
			if !ids[id] {
				delete(result, id)
			}
		}
	}
	return result
}

// AllCandidateDocIDs computes the union of MatchingDocIDs across every
// query, used to load the document index once for the whole batch rather
// than once per query.
func AllCandidateDocIDs(queries []Query, postings map[string][]core.Posting) map[core.DocID]bool {
	all := make(map[core.DocID]bool)
	for _, q := range queries {
		for id := range MatchingDocIDs(q.Tokens, postings) {
			all[id] = true
		}
	}
	return all
}

// SetDocumentTokenCounts supplies the per-document token counts the
// scorer's BM25 length normalization needs, derived from a filtered
// document-index load keyed by AllCandidateDocIDs.
func (p *Processor) SetDocumentTokenCounts(docIndex map[core.DocID]core.DocumentIndexEntry) {
	p.docTokens = make(map[core.DocID]int, len(docIndex))
	for id, entry := range docIndex {
		p.docTokens[id] = entry.TokenCount
	}
}

// Process scores and ranks the matching documents for one query.
func (p *Processor) Process(q Query) core.QueryResult {
	matching := MatchingDocIDs(q.Tokens, p.postings)

	scorer := NewScorer(p.ranker, p.k1, p.b, p.numDocuments, p.avgDocLength, p.lexicon, p.docTokens)

	scored := make([]core.ScoredResult, 0, len(matching))
	for docID := range matching {
		var total float64
		for _, token := range q.Tokens {
			for _, posting := range p.postings[token] {
				if posting.DocID == docID {
					total += scorer.ScoreToken(token, posting.TermFrequency, docID)
					break
				}
			}
		}
		scored = append(scored, core.ScoredResult{ID: docID, Score: total})
	}

	ranked := utils.TopK(scored, p.topK)

	// utils.TopK only guarantees the top-k scores, not a deterministic
	// order among ties; break ties by docid ascending, matching the
	// reference implementation's (score, docid) tuple comparison.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	return core.QueryResult{Query: q.Text, Results: ranked}
}

// ProcessAll scores and ranks every query in the batch.
func (p *Processor) ProcessAll(queries []Query) []core.QueryResult {
	results := make([]core.QueryResult, len(queries))
	for i, q := range queries {
		results[i] = p.Process(q)
	}
	return results
}
