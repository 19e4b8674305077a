// SPDX-License-Identifier: MIT
// Package matrix provides the transpose, product and fused transpose-product
// kernels over any Matrix implementation. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Numeric contract:
//   - C[i,j] is accumulated as ((0 + p0) + p1) + ... in ascending inner index,
//     where each product p is rounded to float64 before the add. No zero
//     skipping (0*Inf and 0*NaN propagate NaN) and no fused multiply-add.
//   - Parallel execution splits output rows only, so the result does not
//     depend on the worker count.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ZeroSum is the initial value of every accumulated output cell.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opTranspose = "Transpose"
	opProduct   = "Product"
	opFused     = "FusedTransposeProduct"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowKernel computes output rows [i0, i1) into a preallocated result.
type rowKernel func(i0, i1 int) error

// runStrips executes kernel over rows [0, m) either inline or split into
// strips of o.rowsPerStrip rows, at most o.workers strips in flight.
// ops is the multiply-add count used against the parallel threshold.
//
// Strips write disjoint row ranges of the result, so no locking is needed.
// The first kernel error is returned; remaining strips still finish.
func runStrips(m, ops int, o Options, kernel rowKernel) error {
	if !o.parallelFor(m, ops) {
		return kernel(0, m)
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i0 := 0; i0 < m; i0 += o.rowsPerStrip {
		i1 := min(i0+o.rowsPerStrip, m)
		g.Go(func() error { return kernel(i0, i1) })
	}

	return g.Wait()
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j At loop.
//
// Inputs:
//   - m: non-nil matrix (r×c), r or c may be 0.
//
// Returns:
//   - Matrix: newly allocated *Dense (c×r) with res[j,i] = m[i,j].
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Product performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, run the i→t→j row kernel over flat
//     buffers; otherwise the i→j→t kernel over At.
//   - Stage 3: Rows are optionally spread across workers (see WithWorkers).
//
// Inputs:
//   - a: left matrix with shape (m × k).
//   - b: right matrix with shape (k × n).
//   - opts: parallelism knobs; never affect the numeric result.
//
// Returns:
//   - Matrix: new *Dense C with shape (m × n).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Each C[i,j] sums a[i,t]*b[t,j] for t = 0..k-1 in that order, in both kernels.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func Product(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	o := gatherOptions(opts...)
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	res := newDense(m, n)

	var kernel rowKernel
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		kernel = func(i0, i1 int) error {
			productDense(da, db, res, i0, i1)
			return nil
		}
	} else {
		kernel = func(i0, i1 int) error {
			return productGeneric(a, b, res, i0, i1)
		}
	}

	if err := runStrips(m, m*k*n, o, kernel); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	return res, nil
}

// productDense fills rows [i0,i1) of res = a×b over flat row-major buffers.
// res rows must be zero on entry.
func productDense(a, b, res *Dense, i0, i1 int) {
	k, n := a.c, b.c
	var (
		i, t, j int
		av      float64
		aRow    []float64
		bRow    []float64
		cRow    []float64
	)
	for i = i0; i < i1; i++ {
		aRow = a.data[i*k : (i+1)*k]
		cRow = res.data[i*n : (i+1)*n]
		for t = 0; t < k; t++ {
			av = aRow[t]
			bRow = b.data[t*n : (t+1)*n]
			for j = 0; j < n; j++ {
				// The explicit conversion forbids FMA contraction.
				cRow[j] += float64(av * bRow[j])
			}
		}
	}
}

// productGeneric fills rows [i0,i1) of res = a×b through the Matrix interface.
func productGeneric(a, b Matrix, res *Dense, i0, i1 int) error {
	k, n := a.Cols(), b.Cols()
	var (
		i, j, t     int
		av, bv, sum float64
		err         error
	)
	for i = i0; i < i1; i++ {
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for t = 0; t < k; t++ {
				if av, err = a.At(i, t); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, t, err)
				}
				if bv, err = b.At(t, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", t, j, err)
				}
				sum += float64(av * bv)
			}
			res.data[i*n+j] = sum
		}
	}

	return nil
}

// FusedTransposeProduct computes C = Aᵀ × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and shared row count (A.Rows == B.Rows).
//   - Stage 2: By default read A column-wise in place (no Aᵀ allocation);
//     with WithMaterializedTranspose, compose Transpose and Product.
//
// Inputs:
//   - a: matrix with shape (r × m).
//   - b: matrix with shape (r × n).
//
// Returns:
//   - Matrix: new *Dense C with shape (m × n), C[i,j] = Σ_t a[t,i]*b[t,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Rows != b.Rows).
//
// Determinism:
//   - Both strategies sum over t = 0..r-1 in order; results are bit-identical
//     to Product(Transpose(a), b).
//
// Complexity:
//   - Time O(r*m*n), Space O(m*n) (plus O(r*m) when materializing).
func FusedTransposeProduct(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateTransposeMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opFused, err)
	}

	o := gatherOptions(opts...)
	if !o.directFusion {
		at, err := Transpose(a)
		if err != nil {
			return nil, matrixErrorf(opFused, err)
		}
		c, err := Product(at, b, opts...)
		if err != nil {
			return nil, matrixErrorf(opFused, err)
		}

		return c, nil
	}

	r, m, n := a.Rows(), a.Cols(), b.Cols()
	res := newDense(m, n)

	var kernel rowKernel
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		kernel = func(i0, i1 int) error {
			fusedDense(da, db, res, i0, i1)
			return nil
		}
	} else {
		kernel = func(i0, i1 int) error {
			return fusedGeneric(a, b, res, i0, i1)
		}
	}

	if err := runStrips(m, r*m*n, o, kernel); err != nil {
		return nil, matrixErrorf(opFused, err)
	}

	return res, nil
}

// fusedDense fills rows [i0,i1) of res = aᵀ×b; row i of res is column i of a.
// res rows must be zero on entry.
func fusedDense(a, b, res *Dense, i0, i1 int) {
	r, m, n := a.r, a.c, b.c
	var (
		i, t, j int
		av      float64
		bRow    []float64
		cRow    []float64
	)
	for i = i0; i < i1; i++ {
		cRow = res.data[i*n : (i+1)*n]
		for t = 0; t < r; t++ {
			av = a.data[t*m+i] // a[t,i] == aᵀ[i,t]
			bRow = b.data[t*n : (t+1)*n]
			for j = 0; j < n; j++ {
				cRow[j] += float64(av * bRow[j])
			}
		}
	}
}

// fusedGeneric fills rows [i0,i1) of res = aᵀ×b through the Matrix interface.
func fusedGeneric(a, b Matrix, res *Dense, i0, i1 int) error {
	r, n := a.Rows(), b.Cols()
	var (
		i, j, t     int
		av, bv, sum float64
		err         error
	)
	for i = i0; i < i1; i++ {
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for t = 0; t < r; t++ {
				if av, err = a.At(t, i); err != nil {
					return fmt.Errorf("At(%d,%d): %w", t, i, err)
				}
				if bv, err = b.At(t, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", t, j, err)
				}
				sum += float64(av * bv)
			}
			res.data[i*n+j] = sum
		}
	}

	return nil
}
