// SPDX-License-Identifier: MIT

// Package aggregate: functional configuration shared by both kernels.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).
package aggregate

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNumThreads runs every kernel on the caller's goroutine.
	DefaultNumThreads = 1

	// DefaultComputeSums makes AcrossCells allocate and fill per-group sums.
	DefaultComputeSums = true

	// DefaultComputeDetected makes AcrossCells allocate and fill per-group
	// detected counts.
	DefaultComputeDetected = true

	// DefaultAverage leaves AcrossGenes results as weighted sums.
	DefaultAverage = false
)

const (
	panicNumThreadsInvalid = "aggregate: WithNumThreads: threads must be >= 1"
	panicLoggerNil         = "aggregate: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	numThreads      int
	computeSums     bool // AcrossCells only
	computeDetected bool // AcrossCells only
	average         bool // AcrossGenes only
	logger          *zap.Logger
}

// WithNumThreads sets the number of workers. Panics if threads < 1.
func WithNumThreads(threads int) Option {
	if threads < 1 {
		panic(panicNumThreadsInvalid)
	}

	return func(o *Options) { o.numThreads = threads }
}

// WithComputeSums toggles allocation of per-group sums in AcrossCells.
// AcrossCellsInto infers this from the buffers it is given.
func WithComputeSums(on bool) Option {
	return func(o *Options) { o.computeSums = on }
}

// WithComputeDetected toggles allocation of per-group detected counts in
// AcrossCells. AcrossCellsInto infers this from the buffers it is given.
func WithComputeDetected(on bool) Option {
	return func(o *Options) { o.computeDetected = on }
}

// WithAverage makes AcrossGenes divide each set's sums by the set's total
// weight (or its size when unweighted).
func WithAverage(on bool) Option {
	return func(o *Options) { o.average = on }
}

// WithLogger routes debug records about strategy selection to l.
// Panics if l is nil; use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		numThreads:      DefaultNumThreads,
		computeSums:     DefaultComputeSums,
		computeDetected: DefaultComputeDetected,
		average:         DefaultAverage,
		logger:          zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
