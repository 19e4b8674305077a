// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tprod/matrix"
)

func ExampleTranspose() {
	m, _ := matrix.NewDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	t, _ := matrix.Transpose(m)
	fmt.Print(t)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

func ExampleProduct() {
	a, _ := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseRows([][]float64{{5, 6}, {7, 8}})
	c, _ := matrix.Product(a, b)
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

func ExampleProduct_dimensionMismatch() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err := matrix.Product(a, b)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true
}

func ExampleFusedTransposeProduct() {
	a, _ := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
	I, _ := matrix.NewIdentity(2)
	c, _ := matrix.FusedTransposeProduct(a, I)
	fmt.Print(c)
	// Output:
	// [1, 3]
	// [2, 4]
}

// ExampleNewDenseColMajor shows the host round trip: column-major in,
// column-major out.
func ExampleNewDenseColMajor() {
	// [[1,2],[3,4]] as the host stores it.
	a, _ := matrix.NewDenseColMajor(2, 2, []float64{1, 3, 2, 4})
	b, _ := matrix.NewDenseColMajor(2, 2, []float64{5, 7, 6, 8})
	c, _ := matrix.Prod(a, b)
	fmt.Println(c.(*matrix.Dense).ColMajor())
	// Output:
	// [19 43 22 50]
}
