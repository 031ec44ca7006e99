package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("memory-limit-mb", "must be positive")
	assert.Equal(t, `invalid configuration for "memory-limit-mb": must be positive`, err.Error())
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.False(t, errors.Is(err, ErrQuery))

	err2 := NewConfigurationError("", "worker count exceeds MaxWorkers")
	assert.Equal(t, "invalid configuration: worker count exceeds MaxWorkers", err2.Error())
}

func TestCorpusError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewCorpusError("corpus.jsonl", 42, cause)
	assert.Equal(t, `corpus "corpus.jsonl": line 42: unexpected end of JSON input`, err.Error())
	assert.True(t, errors.Is(err, ErrCorpus))
	assert.ErrorIs(t, err, cause)

	errNoLine := NewCorpusError("corpus.jsonl", 0, cause)
	assert.Equal(t, `corpus "corpus.jsonl": unexpected end of JSON input`, errNoLine.Error())
}

func TestWorkerError(t *testing.T) {
	cause := errors.New("tokenizer panicked")
	err := NewWorkerError(3, cause)
	assert.Equal(t, "worker 3: tokenizer panicked", err.Error())
	assert.True(t, errors.Is(err, ErrWorker))
	assert.ErrorIs(t, err, cause)
}

func TestMergeError(t *testing.T) {
	cause := errors.New("malformed partial index record")
	err := NewMergeError("index_2_0.jsonl", cause)
	assert.Equal(t, `merge "index_2_0.jsonl": malformed partial index record`, err.Error())
	assert.True(t, errors.Is(err, ErrMerge))

	errNoPath := NewMergeError("", cause)
	assert.Equal(t, "merge: malformed partial index record", errNoPath.Error())
}

func TestQueryError(t *testing.T) {
	cause := errors.New("token not present in lexicon")
	err := NewQueryError("machine learning", cause)
	assert.Equal(t, `query "machine learning": token not present in lexicon`, err.Error())
	assert.True(t, errors.Is(err, ErrQuery))
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError("/var/data/index", cause)
	assert.Equal(t, `io "/var/data/index": permission denied`, err.Error())
	assert.True(t, errors.Is(err, ErrIO))
}

func TestErrorChaining(t *testing.T) {
	originalErr := NewWorkerError(1, errors.New("flush failed"))
	wrappedErr := errors.Join(originalErr, errors.New("additional context"))

	assert.True(t, errors.Is(wrappedErr, ErrWorker))

	var workerErr *WorkerError
	assert.True(t, errors.As(wrappedErr, &workerErr))
	assert.Equal(t, 1, workerErr.WorkerID)
}
