// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Copy matrices across the gonum boundary so callers holding gonum
//     values can use the kernels here, and hand results back.
//
// Notes:
//   - gonum cannot represent empty dense matrices; ToGonum rejects 0×n/n×0.
//   - Both directions copy; no storage is shared.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opFromGonum = "FromGonum"
	opToGonum   = "ToGonum"
)

// FromGonum copies any gonum matrix into a new *Dense.
// *mat.Dense is copied row by row honoring its stride; other
// implementations are read through At.
//
// Errors:
//   - ErrNilMatrix for a nil interface or a nil *mat.Dense.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if gd, ok := src.(*mat.Dense); ok {
		if gd == nil {
			return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
		}
		if gd.IsEmpty() {
			return newDense(0, 0), nil
		}
		raw := gd.RawMatrix()
		out := newDense(raw.Rows, raw.Cols)
		for i := 0; i < raw.Rows; i++ {
			copy(out.data[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
		}

		return out, nil
	}

	r, c := src.Dims()
	out := newDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrInvalidDimensions when m has zero rows or columns.
//
// Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}

	return mat.NewDense(m.r, m.c, m.RawRowMajor()), nil
}
