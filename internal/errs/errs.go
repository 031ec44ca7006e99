// Package errs defines the typed error kinds shared by the indexer and
// processor pipelines. Each kind has a sentinel value for errors.Is checks
// plus a context-carrying struct for callers that want the offending
// path/token/worker attached to the message.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions. Wrap one of these with
// fmt.Errorf("...: %w", ErrX) or use the matching NewXError constructor
// when the caller has context (a path, a worker ID) worth attaching.
var (
	// ErrConfiguration is returned when flags, a config file, or derived
	// settings (memory budget, worker count) are invalid or contradictory.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrCorpus is returned when a line in the corpus file is not valid
	// document JSON or the file cannot be scanned; failing to open the
	// corpus file is reported as ErrIO.
	ErrCorpus = errors.New("corpus read error")

	// ErrWorker is returned when an indexing worker goroutine fails to
	// tokenize, accumulate, or flush a document batch.
	ErrWorker = errors.New("index worker error")

	// ErrMerge is returned when the k-way merge of partial indexes fails
	// to read, decode, or write a chunk.
	ErrMerge = errors.New("merge error")

	// ErrQuery is returned when the queries file, the final index, the
	// lexicon, or the document index cannot be loaded or parsed.
	ErrQuery = errors.New("query processing error")

	// ErrIO is returned for generic filesystem failures (missing
	// directories, permission errors, truncated writes) that don't fit
	// one of the more specific kinds above.
	ErrIO = errors.New("io error")
)

// ConfigurationError carries the offending field and reason for a
// configuration failure.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// CorpusError carries the path and line number where corpus reading failed.
type CorpusError struct {
	Path string
	Line int
	Err  error
}

func (e *CorpusError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corpus %q: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("corpus %q: %v", e.Path, e.Err)
}

func (e *CorpusError) Unwrap() error { return e.Err }

func (e *CorpusError) Is(target error) bool {
	return target == ErrCorpus
}

// NewCorpusError creates a new CorpusError.
func NewCorpusError(path string, line int, err error) *CorpusError {
	return &CorpusError{Path: path, Line: line, Err: err}
}

// WorkerError carries the worker ID that failed and the underlying cause.
type WorkerError struct {
	WorkerID int
	Err      error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.WorkerID, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }

func (e *WorkerError) Is(target error) bool {
	return target == ErrWorker
}

// NewWorkerError creates a new WorkerError.
func NewWorkerError(workerID int, err error) *WorkerError {
	return &WorkerError{WorkerID: workerID, Err: err}
}

// MergeError carries the partial-index path being merged when the failure
// occurred.
type MergeError struct {
	Path string
	Err  error
}

func (e *MergeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("merge %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("merge: %v", e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

func (e *MergeError) Is(target error) bool {
	return target == ErrMerge
}

// NewMergeError creates a new MergeError.
func NewMergeError(path string, err error) *MergeError {
	return &MergeError{Path: path, Err: err}
}

// QueryError carries the query text or token being processed when the
// failure occurred.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("query %q: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("query: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// NewQueryError creates a new QueryError.
func NewQueryError(query string, err error) *QueryError {
	return &QueryError{Query: query, Err: err}
}

// IOError carries the path and underlying cause of a generic filesystem
// failure.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError.
func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}
