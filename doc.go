// Package tprod is a small dense linear-algebra kernel set meant to back
// a statistical host environment: the three routines it exports replace
// interpreted loops for transpose, matrix product and the fused Aᵀ×B.
//
// What is tprod?
//
//	A pure-Go library with:
//		• Dense: row-major float64 storage with safe At/Set
//		• Transpose, Product, FusedTransposeProduct (aliases T, Prod, TProd)
//		• CrossProduct and Covariance built on the fused kernel
//		• Column-major and gonum adapters for marshalling
//
// Guarantees:
//
//   - Every output cell is summed in ascending inner index from +0, so results
//     are bit-reproducible against a naive triple loop.
//   - Optional row-parallelism (WithWorkers) never changes the result.
//   - Dimension mismatches return matrix.ErrDimensionMismatch; nothing reads
//     out of bounds.
//
// Everything lives in the matrix subpackage:
//
//	matrix/   Dense type, kernels, options, validators, adapters
//
//	go get github.com/katalvlaran/tprod/matrix
package tprod
