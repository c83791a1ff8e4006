// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), ownership & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Model value ownership explicitly: Clone/CopyFrom deep-copy, Transfer moves the
//     buffer in O(1), Release drops it. A moved-from or released Dense is the empty
//     sentinel (0×0, nil buffer) and is rejected by every kernel with ErrEmptyMatrix.
//   - Resize (SetRows/SetCols) builds a new buffer, copies the overlap, zero-fills the
//     rest and only then swaps it in; a failed resize leaves the receiver untouched.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use Transfer when handing a large matrix to a new owner; use Clone when both must live on.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c);
//     Transfer/Release: O(1); SetRows/SetCols: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxSetRows  = "SetRows"  // resize tag
	ctxSetCols  = "SetCols"  // resize tag
	ctxCopyFrom = "CopyFrom" // assignment tag
	ctxNewFrom  = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are 0 only in the empty (moved-from) state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts (>=1, or 0 when empty)
	data           []float64 // contiguous row-major storage (len == r*c), owned exclusively
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: optional numeric policy (WithValidateNaNInf).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDefault returns the DefaultRows×DefaultCols (3×3) zero matrix.
// It is the convenience path for callers that do not pick a shape.
func NewDefault() *Dense {
	return &Dense{
		r:              DefaultRows,
		c:              DefaultCols,
		data:           make([]float64, DefaultRows*DefaultCols),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewDenseFrom builds a Dense from a rectangular row literal.
// MAIN DESCRIPTION:
//   - Copy rows[i][j] into a freshly allocated row-major buffer.
//
// Implementation:
//   - Stage 1: validate len(rows)>0 and len(rows[0])>0.
//   - Stage 2: validate every row has the same length.
//   - Stage 3: allocate via NewDense and copy row by row (Set, so policy applies).
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite value under WithValidateNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxNewFrom, i, len(rows[i]), cols, ErrDimensionMismatch)
		}
	}
	m, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
			}
		}
	}

	return m, nil
}

// newDenseLike allocates rows×cols and inherits the numeric policy of like
// when it is a *Dense. Kernels use it so results keep their operand's policy.
func newDenseLike(rows, cols int, like Matrix) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := like.(*Dense); ok && d != nil {
		res.validateNaNInf = d.validateNaNInf
	}

	return res, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is in the moved-from / released sentinel state.
func (m *Dense) IsEmpty() bool { return m.data == nil || m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns a bare sentinel.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - An empty matrix has no addressable cells: ErrEmptyMatrix.
//   - Public methods (At/Set) wrap the sentinel with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.IsEmpty() {
		return 0, ErrEmptyMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrEmptyMatrix on a moved-from matrix;
//     ErrNaNInf for invalid numbers under policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations of either side never reach the other.
// Cloning an empty matrix yields another empty matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant of Clone used by kernels.
func (m *Dense) clone() *Dense {
	var cp []float64
	if m.data != nil {
		cp = make([]float64, len(m.data)) // allocate same length
		copy(cp, m.data)                  // deep copy
	}

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// CopyFrom replaces the receiver's shape and contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Assignment: after the call m equals src and shares no storage with it.
//
// Implementation:
//   - Stage 1: validate src (non-nil, non-empty).
//   - Stage 2: materialize the copy into a fresh buffer.
//   - Stage 3: check the copy against the receiver's policy, then swap it in.
//
// Behavior highlights:
//   - The receiver may be empty (moved-from); CopyFrom makes it valid again.
//   - Self-assignment is a no-op.
//   - The receiver keeps its own numeric policy and is unchanged on error.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (src), propagated At errors for non-Dense src.
//   - ErrNaNInf when the receiver validates and src holds NaN/±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateUsable(src); err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}
	if d, ok := src.(*Dense); ok && d == m {
		return nil
	}
	rows, cols := src.Rows(), src.Cols()
	buf := make([]float64, rows*cols)
	if d, ok := src.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = src.At(i, j); err != nil {
					return matrixErrorf(ctxCopyFrom, err)
				}
				buf[i*cols+j] = v
			}
		}
	}

	return m.adopt(&Dense{r: rows, c: cols, data: buf}, ctxCopyFrom)
}

// Transfer moves ownership of the buffer into a new Dense and leaves the
// receiver in the empty sentinel state (0×0, nil buffer).
// No element is copied.
//
// The receiver must not be used for arithmetic afterwards; kernels reject it
// with ErrEmptyMatrix. It may be released or reassigned via CopyFrom.
// Complexity: O(1).
func (m *Dense) Transfer() *Dense {
	out := &Dense{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
	}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Release drops the buffer and resets the receiver to the empty sentinel.
// Idempotent; a no-op on a moved-from matrix.
func (m *Dense) Release() {
	m.r, m.c, m.data = 0, 0, nil
}

// SetRows resizes the matrix to rows×Cols().
// Rows kept from the old buffer are copied unchanged, new rows are zero,
// truncated rows are discarded.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1; ErrEmptyMatrix on a moved-from matrix.
//     The receiver is unchanged on error.
//
// Complexity: O(rows*cols).
func (m *Dense) SetRows(rows int) error {
	return m.resize(rows, m.c, ctxSetRows)
}

// SetCols resizes the matrix to Rows()×cols with the same preservation rules
// as SetRows, applied to columns.
func (m *Dense) SetCols(cols int) error {
	return m.resize(m.r, cols, ctxSetCols)
}

// resize builds the new buffer, copies the common rows×cols block, and swaps
// it in. Validation runs before any allocation so failure never mutates m.
// An empty receiver is reported before the requested shape is checked.
func (m *Dense) resize(rows, cols int, tag string) error {
	if m.IsEmpty() {
		return denseErrorf(tag, rows, cols, ErrEmptyMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return denseErrorf(tag, rows, cols, ErrInvalidDimensions)
	}
	buf := make([]float64, rows*cols) // zero-filled: new cells are 0

	keepR := min(rows, m.r)
	keepC := min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf // swap; old buffer is left to the GC

	return nil
}

// RawCopy returns a row-major copy of the elements (nil for an empty matrix).
// Complexity: O(r*c).
func (m *Dense) RawCopy() []float64 {
	if m.data == nil {
		return nil
	}
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) //separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // stop if the callback returns false
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - All-or-nothing: results go to a scratch buffer that replaces the
//     storage only after every element passed; on error m is unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int // predeclare loop counters and base offset
	var nv float64     // new value

	buf := make([]float64, len(m.data))
	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			buf[base+j] = nv
		}
	}
	m.data = buf

	return nil // success
}
