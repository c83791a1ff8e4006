// Package matrix is a dense, row-major float64 matrix value type with the
// algebra needed for determinants, cofactors, transposes and inverses.
//
// The matrix package provides:
//
//   - Dense storage with explicit ownership: NewDense/NewDefault, Clone,
//     CopyFrom (assignment), Transfer (O(1) move) and Release.
//   - Resize with preservation (SetRows, SetCols).
//   - Element-wise kernels: Equal (tolerance Epsilon = 1e-7), AllClose, Add,
//     Sub, Scale, plus in-place variants on *Dense.
//   - Mul and Transpose.
//   - Minor, Determinant (Laplace expansion), Cofactors, Adjugate and an
//     adjugate-based Inverse with singularity detection.
//
// Every failure is one of the package sentinels in errors.go (ErrInvalidDimensions,
// ErrDimensionMismatch, ErrNonSquare, ErrSingular, ErrOutOfRange, ErrTooSmall,
// ErrEmptyMatrix, ...) wrapped with the operation name; match with errors.Is.
//
// Determinant and the cofactor family are factorial in n and meant for small
// matrices. All operations are synchronous; a *Dense must not be mutated from
// several goroutines at once, while independent matrices may be used freely
// in parallel.
package matrix
