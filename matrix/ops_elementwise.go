// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: tolerance equality (Equal, AllClose), Add, Sub, Scale.
//   - In-place variants on *Dense (AddInPlace, SubInPlace, ScaleInPlace).
//
// Design:
//   - Out-of-place kernels never mutate their operands and always return a
//     freshly allocated *Dense.
//   - In-place variants validate first, compute into a fresh buffer, then swap it
//     into the receiver, so a failed call leaves the receiver untouched.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on the Dense fast path, i→j otherwise).
//   - O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// Equal reports whether a and b have the same shape and every pair of
// elements satisfies |a[i,j] - b[i,j]| <= Epsilon.
// MAIN DESCRIPTION:
//   - Shape-strict, tolerance-aware equality with the package-wide Epsilon.
//
// Behavior highlights:
//   - nil or empty operands never compare equal (a false, not an error).
//   - Differing shapes compare unequal regardless of content.
//   - NaN never equals anything (the difference is NaN and fails the <= test).
//
// Complexity:
//   - Time O(r*c), Space O(1). Stops at the first differing element.
func Equal(a, b Matrix) bool {
	ok, err := allClose(a, b, Epsilon)

	return err == nil && ok
}

// AllClose is Equal with a caller-supplied absolute tolerance.
// Negative tolerances are normalized with math.Abs.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (operands).
//   - ErrNaNInf (tol is NaN or ±Inf).
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateTolerance(tol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ok, err := allClose(a, b, math.Abs(tol))
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// allClose is the shared comparison loop; a shape mismatch is (false, err).
func allClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}

	// Fast path: flat walk over both buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !(math.Abs(da.data[idx]-db.data[idx]) <= tol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Fallback: generic i→j via At.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !(math.Abs(av-bv) <= tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (validation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseLike(rows, cols, a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated (non-nil, non-empty); the original matrix is never mutated.
//
// Notes:
//   - There is no shape constraint; alpha = 0 yields an explicit zero matrix.
//   - NaN/Inf alpha propagates into the result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseLike(rows, cols, m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// AddInPlace performs m += b.
// Same failure conditions as Add; the receiver is unchanged on error.
// Complexity: Time O(r*c), Space O(r*c) (result buffer swapped in).
func (m *Dense) AddInPlace(b Matrix) error {
	res, err := addSub(m, b, +1, opAdd)
	if err != nil {
		return err
	}

	return m.adopt(res, opAdd)
}

// SubInPlace performs m -= b.
// Same failure conditions as Sub; the receiver is unchanged on error.
func (m *Dense) SubInPlace(b Matrix) error {
	res, err := addSub(m, b, -1, opSub)
	if err != nil {
		return err
	}

	return m.adopt(res, opSub)
}

// ScaleInPlace performs m *= alpha.
// Fails only for a nil/empty receiver, or under the NaN/Inf policy when the
// product is not finite.
func (m *Dense) ScaleInPlace(alpha float64) error {
	res, err := Scale(m, alpha)
	if err != nil {
		return err
	}

	return m.adopt(res, opScale)
}

// adopt swaps res's shape and buffer into m after enforcing m's numeric policy.
// res must be a freshly allocated result that nothing else references.
func (m *Dense) adopt(res *Dense, opTag string) error {
	if m.validateNaNInf {
		var i, j int
		for i = 0; i < res.r; i++ {
			for j = 0; j < res.c; j++ {
				v := res.data[i*res.c+j]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return matrixErrorf(opTag, denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
			}
		}
	}
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}
