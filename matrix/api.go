// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points named after the host binding's exported
//     routines (T, Prod, TProd) so call sites read the same on both sides.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields an empty 0×0 matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if err := ValidateShape(n, n); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, err)
	}
	I := newDense(n, n)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m, or nil for a nil m.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ---------- Host-binding aliases ----------

// T is an alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Prod is an alias of Product.
func Prod(a, b Matrix, opts ...Option) (Matrix, error) { return Product(a, b, opts...) }

// TProd is an alias of FusedTransposeProduct: Aᵀ × B.
func TProd(a, b Matrix, opts ...Option) (Matrix, error) { return FusedTransposeProduct(a, b, opts...) }
