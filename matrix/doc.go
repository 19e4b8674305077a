// Package matrix implements dense float64 matrices and the three kernels
// exported to the host statistical environment:
//
//   - Transpose(M)                 → Mᵀ
//   - Product(A, B)                → A × B
//   - FusedTransposeProduct(A, B)  → Aᵀ × B, without materializing Aᵀ
//
// Every operation allocates a fresh *Dense and never mutates its inputs.
// Each output cell is accumulated in ascending inner index order starting
// from +0, so results are bit-reproducible against a naive triple loop
// regardless of the parallelism configured via Option.
//
// Data crossing the host boundary is usually column-major; use
// NewDenseColMajor and (*Dense).ColMajor to marshal it.
//
// See the examples in this package for usage patterns.
package matrix
