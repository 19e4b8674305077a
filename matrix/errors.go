// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations MUST return these sentinels (optionally wrapped with
// operation context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// nonsensical Option values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf("Op", err);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> index/shape.

var (
	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Product where a.Cols != b.Rows, or FusedTransposeProduct where
	// a.Rows != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative
	// or their element count overflows int,
	// or that an empty matrix was handed to a consumer that cannot hold one.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrDataLength signals that a flat backing slice does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrRaggedRows signals that a [][]float64 input has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf where a finite value is required
	// (comparison tolerances). Matrix elements themselves may be NaN/Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
