// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tprod/matrix"
)

func TestCrossProduct(t *testing.T) {
	X := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	G, err := matrix.CrossProduct(X)
	require.NoError(t, err)
	// XᵀX = [[1+9+25, 2+12+30], [.., 4+16+36]]
	CompareExact(t, [][]float64{{35, 44}, {44, 56}}, G)

	_, err = matrix.CrossProduct(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCenterColumns(t *testing.T) {
	X := FromRows(t, [][]float64{{1, 10}, {3, 20}, {5, 30}})

	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 20}, means)
	CompareExact(t, [][]float64{{-2, -10}, {0, 0}, {2, 10}}, Xc)

	// input untouched, fallback path agrees
	CompareExact(t, [][]float64{{1, 10}, {3, 20}, {5, 30}}, X)
	Xc2, means2, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)
	require.Equal(t, means, means2)
	require.True(t, matrix.Equal(Xc, Xc2))

	empty, means, err := matrix.CenterColumns(MustDense(t, 0, 3))
	require.NoError(t, err)
	MustDims(t, empty, 0, 3)
	require.Equal(t, []float64{0, 0, 0}, means)
}

func TestCovariance(t *testing.T) {
	X := FromRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}, {4, 8}})

	cov, means, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 5}, means)
	// var(x)=5/3, cov(x,2x)=10/3, var(2x)=20/3
	CompareClose(t, FromRows(t, [][]float64{{5.0 / 3, 10.0 / 3}, {10.0 / 3, 20.0 / 3}}), cov, 1e-12, 0)
}

// TestCovariance_AgainstGonumStat cross-checks with gonum/stat.
func TestCovariance_AgainstGonumStat(t *testing.T) {
	X := RandFilledDense(t, 40, 5, 77)
	g, err := matrix.ToGonum(X)
	require.NoError(t, err)

	var want mat.SymDense
	stat.CovarianceMatrix(&want, g, nil)
	wantD, err := matrix.FromGonum(&want)
	require.NoError(t, err)

	cov, _, err := matrix.Covariance(X, matrix.WithWorkers(2), matrix.WithParallelThreshold(0))
	require.NoError(t, err)
	CompareClose(t, cov, wantD, 1e-10, 1e-12)
}

// TestCovariance_ScalesByDivision checks every cell is G[i,j]/(r-1) exactly,
// with G the fused cross product of the centered data.
func TestCovariance_ScalesByDivision(t *testing.T) {
	const r = 7
	X := RandFilledDense(t, r, 6, 13)

	Xc, _, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	G, err := matrix.FusedTransposeProduct(Xc, Xc)
	require.NoError(t, err)
	want := G.(*matrix.Dense).RawRowMajor()
	for idx := range want {
		want[idx] /= float64(r - 1)
	}

	cov, _, err := matrix.Covariance(X)
	require.NoError(t, err)
	require.Equal(t, want, cov.(*matrix.Dense).RawRowMajor())
}

func TestCovariance_Degenerate(t *testing.T) {
	cov, means, err := matrix.Covariance(MustDense(t, 5, 0))
	require.NoError(t, err)
	MustDims(t, cov, 0, 0)
	require.Empty(t, means)

	_, _, err = matrix.Covariance(MustDense(t, 1, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.Covariance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
