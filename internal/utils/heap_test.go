package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scoredItem struct {
	name  string
	score float64
}

func (s scoredItem) GetScore() float64 { return s.score }

func TestTopKReturnsDescendingOrder(t *testing.T) {
	items := []scoredItem{
		{"a", 1.0},
		{"b", 5.0},
		{"c", 3.0},
		{"d", 4.0},
		{"e", 2.0},
	}

	top := TopK(items, 3)

	require := []float64{5.0, 4.0, 3.0}
	for i, want := range require {
		assert.Equal(t, want, top[i].GetScore())
	}
}

func TestTopKWithKLargerThanInput(t *testing.T) {
	items := []scoredItem{{"a", 1.0}, {"b", 2.0}}
	top := TopK(items, 10)
	assert.Len(t, top, 2)
	assert.Equal(t, 2.0, top[0].GetScore())
}

func TestTopKWithZeroK(t *testing.T) {
	items := []scoredItem{{"a", 1.0}}
	assert.Empty(t, TopK(items, 0))
}

func TestTopKWithEmptyInput(t *testing.T) {
	assert.Empty(t, TopK([]scoredItem{}, 5))
}
