// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Accept degenerate shapes (0×n, n×0, 0×0): transposing or multiplying them is legal.
//   - Marshal to and from the column-major layout used by the host environment.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); ColMajor: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"  // method tag used in error wrappers
	ctxSet      = "Set" // method tag used in error wrappers
	ctxNew      = "NewDense"
	ctxNewFrom  = "NewDenseFrom"
	ctxNewRows  = "NewDenseRows"
	ctxNewCMaj  = "NewDenseColMajor"
	ctxIdentity = "NewIdentity"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <sentinel>"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation.
//
// Implementation:
//   - Stage 1: ValidateShape (non-negative, rows*cols fits in int).
//   - Stage 2: allocate zero-filled buffer (possibly empty).
//
// Behavior highlights:
//   - Degenerate shapes are legal: a 0×3 matrix is a valid operand and the
//     transpose of a 3×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions on negative rows or cols, or when rows*cols overflows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee ValidateShape(rows, cols) == nil.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDenseFrom builds an r×c Dense from a row-major flat slice.
// The slice is copied; later writes to data do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions on negative or overflowing shape.
//   - ErrDataLength when len(data) != rows*cols.
//
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): got %d values: %w", ctxNewFrom, rows, cols, len(data), ErrDataLength)
	}
	m := newDense(rows, cols)
	copy(m.data, data)

	return m, nil
}

// NewDenseRows builds a Dense from a slice of equal-length rows.
// A nil or empty slice yields a 0×0 matrix; a slice of empty rows yields r×0.
//
// Errors:
//   - ErrRaggedRows when any row length differs from the first row.
//
// Complexity: O(r*c).
func NewDenseRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return newDense(0, 0), nil
	}
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxNewRows, i, len(rows[i]), c, ErrRaggedRows)
		}
	}
	m := newDense(r, c)
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseColMajor builds an r×c Dense from column-major data, i.e.
// element (i,j) is data[j*rows+i]. This is the layout numeric matrices
// have on the host side of the binding.
//
// Errors:
//   - ErrInvalidDimensions on negative or overflowing shape.
//   - ErrDataLength when len(data) != rows*cols.
//
// Complexity: O(r*c).
func NewDenseColMajor(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewCMaj, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): got %d values: %w", ctxNewCMaj, rows, cols, len(data), ErrDataLength)
	}
	m := newDense(rows, cols)
	var i, j, src int
	for j = 0; j < cols; j++ {
		src = j * rows // start of column j in the source
		for i = 0; i < rows; i++ {
			m.data[i*cols+j] = data[src+i]
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawRowMajor returns a copy of the backing buffer in row-major order.
func (m *Dense) RawRowMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ColMajor returns a copy of the elements in column-major order
// (element (i,j) at index j*Rows()+i), ready to hand back to the host.
// Complexity: O(r*c).
func (m *Dense) ColMajor() []float64 {
	out := make([]float64, len(m.data))
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// ToRows returns the elements as freshly allocated rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging, not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only, no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
