// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// checkErr asserts err is nil when want is nil, otherwise errors.Is(err, want).
func checkErr(t *testing.T, err, want error) {
	t.Helper()
	if want == nil {
		require.NoError(t, err)
		return
	}
	require.Error(t, err)
	require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
}

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }
	moved := MustDense(t, 2, 3)
	_ = moved.Transfer()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"moved-from", moved, zeros(2, 3), matrix.ErrEmptyMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			checkErr(t, matrix.ValidateBinarySameShape(tc.a, tc.b), tc.wantErr)
		})
	}
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	checkErr(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)), nil)
	checkErr(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	checkErr(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"4x4", MustDense(t, 4, 4), nil},
		{"2x8", MustDense(t, 2, 8), matrix.ErrNonSquare},
		{"generic 3x2", hide{MustDense(t, 3, 2)}, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			checkErr(t, matrix.ValidateSquareNonNil(tc.m), tc.wantErr)
		})
	}
}

func TestValidateIndexAndMinorable(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	checkErr(t, matrix.ValidateIndex(m, 1, 2), nil)
	checkErr(t, matrix.ValidateIndex(m, 2, 0), matrix.ErrOutOfRange)
	checkErr(t, matrix.ValidateIndex(m, 0, 3), matrix.ErrOutOfRange)
	checkErr(t, matrix.ValidateIndex(m, -1, 0), matrix.ErrOutOfRange)

	checkErr(t, matrix.ValidateMinorable(m), nil)
	checkErr(t, matrix.ValidateMinorable(MustDense(t, 1, 5)), matrix.ErrTooSmall)
	checkErr(t, matrix.ValidateMinorable(MustDense(t, 5, 1)), matrix.ErrTooSmall)
}

func TestValidateTolerance(t *testing.T) {
	t.Parallel()

	checkErr(t, matrix.ValidateTolerance(0), nil)
	checkErr(t, matrix.ValidateTolerance(-1e-3), nil)
	checkErr(t, matrix.ValidateTolerance(math.NaN()), matrix.ErrNaNInf)
	checkErr(t, matrix.ValidateTolerance(math.Inf(-1)), matrix.ErrNaNInf)
}
