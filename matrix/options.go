// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Options never change numeric results. Parallelism splits output rows,
//     and each cell is still summed by exactly one goroutine in index order.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of goroutines used by Product and
	// FusedTransposeProduct. 1 means fully sequential.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum m*k*n multiply-add count before
	// a multi-worker configuration actually fans out.
	DefaultParallelThreshold = 64 * 64 * 64

	// DefaultRowsPerStrip is the number of output rows per parallel work item.
	DefaultRowsPerStrip = 16

	// DefaultDirectFusion selects the direct Aᵀ×B kernel (no intermediate Aᵀ).
	DefaultDirectFusion = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid      = "matrix: WithWorkers: workers must be >= 1"
	panicThresholdInvalid    = "matrix: WithParallelThreshold: threshold must be >= 0"
	panicRowsPerStripInvalid = "matrix: WithRowsPerStrip: rows must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers           int  // DefaultWorkers
	parallelThreshold int  // DefaultParallelThreshold
	rowsPerStrip      int  // DefaultRowsPerStrip
	directFusion      bool // DefaultDirectFusion
}

// WithWorkers sets the maximum number of goroutines used to compute output rows.
// Panics when n < 1.
//
// Notes:
//   - runtime.GOMAXPROCS(0) is a reasonable value for large operands.
//   - Results are bit-identical for every n.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the minimum m*k*n below which the kernels stay
// sequential even when more than one worker is configured. 0 always fans out.
// Panics on negative values.
func WithParallelThreshold(ops int) Option {
	if ops < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = ops }
}

// WithRowsPerStrip sets how many output rows one work item covers.
// Panics when rows < 1.
func WithRowsPerStrip(rows int) Option {
	if rows < 1 {
		panic(panicRowsPerStripInvalid)
	}

	return func(o *Options) { o.rowsPerStrip = rows }
}

// WithMaterializedTranspose makes FusedTransposeProduct compute Transpose(a)
// first and then Product, allocating the intermediate.
func WithMaterializedTranspose() Option {
	return func(o *Options) { o.directFusion = false }
}

// WithDirectFusion makes FusedTransposeProduct read a column-wise in place
// without allocating aᵀ. This is the default.
func WithDirectFusion() Option {
	return func(o *Options) { o.directFusion = true }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Workers reports the configured worker count.
func (o Options) Workers() int { return o.workers }

// ParallelThreshold reports the configured fan-out threshold.
func (o Options) ParallelThreshold() int { return o.parallelThreshold }

// RowsPerStrip reports the configured strip height.
func (o Options) RowsPerStrip() int { return o.rowsPerStrip }

// DirectFusion reports whether the direct Aᵀ×B kernel is selected.
func (o Options) DirectFusion() bool { return o.directFusion }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
		rowsPerStrip:      DefaultRowsPerStrip,
		directFusion:      DefaultDirectFusion,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for kernels.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// parallelFor reports whether a kernel of m output rows and ops multiply-adds
// should fan out under o.
func (o Options) parallelFor(m, ops int) bool {
	return o.workers > 1 && m > 1 && ops >= o.parallelThreshold
}
