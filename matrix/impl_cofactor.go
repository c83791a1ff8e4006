// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Minor extraction, Laplace-expansion determinant, cofactor matrix,
//     adjugate and adjugate-based inverse.
//
// Layering (strictly bottom-up, nothing here calls upward):
//
//	Inverse → Adjugate → Cofactors → Determinant → Minor → Dense/Scale/Transpose
//
// Determinism & Performance:
//   - Determinant expands along row 0 with the sign starting at +1 for column 0.
//   - No memoization: Determinant is O(n!) and Cofactors/Inverse are O(n²·(n-1)!).
//     Intended for small matrices; there is no LU/QR path.
//   - Public entry points validate once; the recursion runs on *Dense
//     without re-validating.

package matrix

import (
	"fmt"
	"math"
)

// Closed-form sizes handled without recursion.
const (
	detScalar = 1 // 1×1: the single element
	detPair   = 2 // 2×2: ad - bc
)

// Minor returns the (r-1)×(c-1) submatrix of m obtained by deleting row and col.
// MAIN DESCRIPTION:
//   - Copy every element of m except those in the excluded row and column,
//     preserving relative order.
//
// Implementation:
//   - Stage 1: validate m (usable), the indices, and that m is at least 2×2.
//   - Stage 2: materialize m as *Dense (no copy when it already is one).
//   - Stage 3: copy row blocks around the excluded column into a fresh Dense.
//
// Inputs:
//   - m: any matrix with Rows() ≥ 2 and Cols() ≥ 2 (need not be square).
//   - row, col: zero-based indices of the row and column to drop.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix.
//   - ErrOutOfRange (row or col outside m).
//   - ErrTooSmall (m has a single row or column).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateUsable(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateMinorable(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(d, row, col), nil
}

// minorOf is the unchecked kernel behind Minor. Caller guarantees d is at
// least 2×2 and (row, col) is in range.
func minorOf(d *Dense, row, col int) *Dense {
	rows, cols := d.r-1, d.c-1
	out := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: d.validateNaNInf,
	}

	var i, dst, src int
	for i = 0; i < d.r; i++ {
		if i == row {
			continue // dropped row
		}
		src = i * d.c
		// Left block [0, col) then right block (col, c).
		copy(out.data[dst:dst+col], d.data[src:src+col])
		copy(out.data[dst+col:dst+cols], d.data[src+col+1:src+d.c])
		dst += cols
	}

	return out
}

// Determinant computes det(m) by Laplace (cofactor) expansion along row 0.
// MAIN DESCRIPTION:
//   - n=1: the single element; n=2: m00*m11 - m01*m10;
//     n≥3: Σ_j m[0,j] · (-1)^j · det(Minor(m, 0, j)).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any depth of the recursion.
//
// Notes:
//   - Intended for small n. Larger inputs are correct but factorially slow.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinantOf(d), nil
}

// determinantOf is the recursive kernel; d must be square and non-empty.
func determinantOf(d *Dense) float64 {
	switch d.r {
	case detScalar:
		return d.data[0]
	case detPair:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	result := ZeroSum
	sign := 1.0
	for j := 0; j < d.c; j++ {
		result += sign * d.data[j] * determinantOf(minorOf(d, 0, j)) // d.data[j] is m[0,j]
		sign = -sign
	}

	return result
}

// Cofactors returns the cofactor matrix C with C[i,j] = (-1)^(i+j) · det(Minor(m, i, j)).
// MAIN DESCRIPTION:
//   - Matrix of signed minor determinants ("algebraic complements").
//
// Implementation:
//   - Stage 1: validate usable, square, and at least 2×2.
//   - Stage 2: for each (i,j) in row-major order, cut the minor and expand it.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare.
//   - ErrTooSmall for 1×1 input: its only minor would be 0×0, which has no
//     determinant under this package's shape rules.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if err := ValidateMinorable(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return cofactorsOf(d), nil
}

// cofactorsOf is the unchecked kernel behind Cofactors (d square, n ≥ 2).
func cofactorsOf(d *Dense) *Dense {
	n := d.r
	out := &Dense{
		r:              n,
		c:              n,
		data:           make([]float64, n*n),
		validateNaNInf: d.validateNaNInf,
	}

	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sign = 1.0
			if (i+j)%2 != 0 {
				sign = -1.0
			}
			out.data[i*n+j] = sign * determinantOf(minorOf(d, i, j))
		}
	}

	return out
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
// Same failure conditions as Cofactors.
// Complexity: as Cofactors plus O(n²) for the transpose.
func Adjugate(m Matrix) (*Dense, error) {
	c, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse computes m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Adjugate-based inverse with an absolute singularity guard.
//
// Implementation:
//   - Stage 1: validate usable, square, and at least 2×2.
//   - Stage 2: d = Determinant(m); reject |d| < Epsilon as singular.
//   - Stage 3: return Scale(Adjugate(m), 1/d).
//
// Behavior highlights:
//   - Input is read-only; every intermediate is freshly allocated.
//   - Uses the same Epsilon as Equal, so a matrix whose determinant Equal
//     would call zero is always rejected.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquare.
//   - ErrTooSmall (1×1 input; see Cofactors).
//   - ErrSingular (|det| < Epsilon).
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateMinorable(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := determinantOf(d)
	if math.Abs(det) < Epsilon {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	adj, err := Transpose(cofactorsOf(d))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy of it.
// Assumes m passed ValidateUsable.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d := &Dense{}
	if err := d.CopyFrom(m); err != nil {
		return nil, err
	}

	return d, nil
}
