// Package tokenizer turns raw document or query text into the stream of
// normalized tokens the indexer and processor both key off. It is the one
// place case-folding, stemming, and stopword removal happen, so that
// query tokens and indexed tokens are always produced by the same
// pipeline.
package tokenizer

import (
	"strings"
	"sync"
	"unicode"

	"github.com/caneroj1/stemmer"
	"github.com/fatih/camelcase"
	"github.com/go-ego/gse"
)

var (
	gseSegmenter gse.Segmenter
	gseOnce      sync.Once
	gseInitErr   error
)

func initGSE() error {
	gseOnce.Do(func() {
		gseInitErr = gseSegmenter.LoadDictEmbed()
	})
	return gseInitErr
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) ||
			unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) ||
			unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// Tokenize splits text into case-normalized, stemmed, stopword-filtered
// tokens. CJK text is segmented with gse instead of split on word
// boundaries, since whitespace doesn't delimit words in those scripts.
// Stopwords are dropped before stemming, matching the reference
// tokenizer's order (filter, then stem) so a stopword never survives by
// stemming into something unrecognizable.
func Tokenize(text string) []string {
	if containsCJK(text) {
		return tokenizeMixed(text)
	}
	return tokenizeWords(text)
}

func tokenizeMixed(text string) []string {
	if err := initGSE(); err != nil {
		return tokenizeWords(text)
	}

	var tokens []string
	for _, seg := range gseSegmenter.Segment([]byte(text)) {
		word := seg.Token().Text()
		if strings.TrimSpace(word) == "" {
			continue
		}
		if containsCJK(word) {
			if lower := strings.ToLower(word); lower != "" {
				tokens = append(tokens, lower)
			}
			continue
		}
		tokens = append(tokens, processWord(word)...)
	}
	return tokens
}

// tokenizeWords extracts runs of letters/digits as words, splits each on
// internal case/underscore boundaries, and normalizes+stems the pieces.
func tokenizeWords(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, processWord(current.String())...)
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, processWord(current.String())...)
	}
	return tokens
}

// processWord splits one extracted word on snake_case and camelCase
// boundaries, lowercases each piece, drops purely numeric pieces and
// stopwords, then stems what remains. Stopwords are filtered before
// stemming so a word like "is" is dropped outright rather than stemmed
// first and possibly missed by the stopword set.
func processWord(word string) []string {
	var result []string
	for _, part := range strings.Split(word, "_") {
		if part == "" {
			continue
		}
		for _, piece := range camelcase.Split(part) {
			token := strings.ToLower(piece)
			if token == "" || isNumeric(token) || EnglishStopwords[token] {
				continue
			}
			if stemmed := strings.ToLower(stemmer.Stem(token)); stemmed != "" {
				result = append(result, stemmed)
			} else {
				result = append(result, token)
			}
		}
	}
	return result
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
