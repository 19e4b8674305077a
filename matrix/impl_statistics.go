// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Statistical consumers of the fused kernel: the Gram matrix XᵀX and the
//     sample covariance of column-wise observations.
//   - Both route through FusedTransposeProduct, so Xᵀ is never materialized.
//
// Determinism:
//   - Column means accumulate in ascending row order; everything else
//     inherits the kernel contract.

package matrix

const (
	opCrossProduct  = "CrossProduct"
	opCovariance    = "Covariance"
	opCenterColumns = "CenterColumns"
)

// CrossProduct returns XᵀX (c×c) for an r×c matrix X.
// Equivalent to FusedTransposeProduct(X, X, opts...).
//
// Errors:
//   - ErrNilMatrix.
func CrossProduct(X Matrix, opts ...Option) (Matrix, error) {
	G, err := FusedTransposeProduct(X, X, opts...)
	if err != nil {
		return nil, matrixErrorf(opCrossProduct, err)
	}

	return G, nil
}

// CenterColumns returns a centered copy Xc[i,j] = X[i,j] - mean_j and the
// column means. r==0 yields zero means and an empty copy.
//
// Errors:
//   - ErrNilMatrix; At errors from non-Dense inputs.
//
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	out := newDense(r, c)
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return out, means, nil
	}

	// Stage 1: copy X into out.
	if d, ok := X.(*Dense); ok {
		copy(out.data, d.data)
	} else {
		var (
			v   float64
			err error
		)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
				out.data[i*c+j] = v
			}
		}
	}

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += out.data[base+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] -= means[j]
		}
	}

	return out, means, nil
}

// Covariance returns the sample covariance (Xcᵀ Xc)/(r-1) of an r×c matrix
// whose rows are observations, plus the column means.
//
// Behavior highlights:
//   - c == 0 yields a 0×0 covariance.
//   - r < 2 with c > 0 is ErrDimensionMismatch (no sample covariance).
//
// Complexity: O(r*c²).
func Covariance(X Matrix, opts ...Option) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return newDense(0, 0), make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := FusedTransposeProduct(Xc, Xc, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// G is a fresh *Dense owned here; scale in place.
	cov := G.(*Dense)
	denom := float64(r - 1)
	for idx := range cov.data {
		cov.data[idx] /= denom
	}

	return cov, means, nil
}
