package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeDropsStopwordsAndStems(t *testing.T) {
	tokens := Tokenize("The quick brown foxes are jumping over the lazy dogs")

	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "are")
	assert.NotContains(t, tokens, "over")
	assert.Contains(t, tokens, "quick")
	assert.Contains(t, tokens, "brown")
	assert.Contains(t, tokens, "fox")
	assert.Contains(t, tokens, "jump")
	assert.Contains(t, tokens, "lazi")
	assert.Contains(t, tokens, "dog")
}

func TestTokenizeLowercases(t *testing.T) {
	tokens := Tokenize("MACHINE Learning")
	for _, tok := range tokens {
		assert.Equal(t, strings.ToLower(tok), tok)
	}
}

func TestTokenizeSplitsSnakeAndCamelCase(t *testing.T) {
	tokens := Tokenize("invertedIndex partial_index_writer")
	assert.Contains(t, tokens, "invert")
	assert.Contains(t, tokens, "index")
	assert.Contains(t, tokens, "partial")
	assert.Contains(t, tokens, "writer")
}

func TestTokenizeDropsPurelyNumericTokens(t *testing.T) {
	tokens := Tokenize("release 2024 version")
	assert.NotContains(t, tokens, "2024")
	assert.Contains(t, tokens, "releas")
	assert.Contains(t, tokens, "version")
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}

func TestTokenizeSameQueryAndDocumentPipeline(t *testing.T) {
	// The processor must tokenize queries with the exact same function the
	// indexer uses, or posting-list lookups never hit.
	doc := Tokenize("Machine learning models require large datasets")
	query := Tokenize("machine learning")

	for _, q := range query {
		assert.Contains(t, doc, q)
	}
}

func TestContainsCJKDetection(t *testing.T) {
	assert.True(t, containsCJK("日本語のテキスト"))
	assert.False(t, containsCJK("plain english text"))
}

func TestTokenizeMixedCJKAndLatin(t *testing.T) {
	tokens := Tokenize("machine learning 機械学習")
	assert.Contains(t, tokens, "machin")
	assert.NotEmpty(t, tokens)
}
