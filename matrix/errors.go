// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly from validators; kernels wrap with matrixErrorf(op, err) at their
// boundary and callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty (moved-from) -> shape/square -> index -> size -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (construction, SetRows, SetCols).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and Minor MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| < Epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrTooSmall signals that a minor-based kernel (Minor, Cofactors, Inverse)
	// was given a matrix with fewer than two rows or columns.
	ErrTooSmall = errors.New("matrix: matrix too small for minor extraction")

	// ErrEmptyMatrix signals use of a moved-from or released Dense (0×0 sentinel)
	// where a valid matrix is required.
	ErrEmptyMatrix = errors.New("matrix: empty (moved-from) matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Apply, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ALIASES
// The shape-mismatch condition is also exposed under the name used by the
// algebra docs; both names are the same sentinel for errors.Is.

// ErrShapeMismatch is the same sentinel as ErrDimensionMismatch.
var ErrShapeMismatch = ErrDimensionMismatch

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
