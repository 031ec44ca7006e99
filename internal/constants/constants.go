// Package constants holds the tuning knobs and policy constants shared
// across the indexer and processor pipelines.
package constants

const (
	// AppName identifies the tool family in config-path resolution and
	// log output.
	AppName = "mneme-index"

	// DefaultConfigPath is the optional TOML defaults file consulted by
	// both CLIs before flag parsing. CLI flags always override it.
	DefaultConfigPath = "~/.config/mneme-index/config.toml"

	// DefaultBatchSize is the number of documents DocumentStreamer groups
	// into one batch before enqueuing it.
	DefaultBatchSize = 1000

	// DefaultQueueDepth is the bounded channel capacity between the
	// streamer and the worker pool. Backpressure comes from this alone.
	DefaultQueueDepth = 8

	// MaxWorkers caps the default worker count even when more CPUs are
	// available, matching the reference implementation's min(cpu, 8).
	MaxWorkers = 8

	// OverheadPerWorkerMB is the empirical per-worker fixed cost (process
	// bookkeeping, open file handles, buffers) reserved on top of the
	// posting-accumulation budget before a worker's usable budget is
	// computed.
	OverheadPerWorkerMB = 40

	// SoftMemoryFraction is applied to the operator-supplied memory limit
	// before subtracting current RSS, leaving headroom for the runtime
	// and the merge/flush phase.
	SoftMemoryFraction = 0.8

	// BytesPerPosting estimates the amortized cost of one accumulated
	// (docid, tf) entry inside InMemoryIndex's map-of-slices, used to
	// derive max_entries from a worker's memory budget. This is a policy
	// knob, not a measurement: a Go struct{ DocID string; TF int } stored
	// in a growable slice costs roughly half of the original
	// implementation's measured 112-byte boxed Python tuple, since the
	// slice holds fixed-width values rather than individually boxed
	// objects. Tune this constant if profiling shows otherwise.
	BytesPerPosting = 56

	// OneMB is the byte count of one megabyte, used throughout the
	// memory-budget arithmetic.
	OneMB = 1024 * 1024

	// DefaultTopK is the number of ranked results returned per query.
	DefaultTopK = 10

	// ScannerInitialBufSize is the initial buffer size for bufio.Scanner
	// when reading corpus/index/query files line by line.
	ScannerInitialBufSize = 64 * 1024

	// ScannerMaxBufSize is the maximum buffer size for bufio.Scanner.
	// Lines longer than this (e.g. a pathological single-document JSON
	// line) will still fail to scan.
	ScannerMaxBufSize = 16 * 1024 * 1024

	// DefaultBM25K1 controls term-frequency saturation in BM25.
	DefaultBM25K1 = 1.5

	// DefaultBM25B controls document-length normalization in BM25.
	DefaultBM25B = 0.75
)
