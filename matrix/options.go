// SPDX-License-Identifier: MIT

// Package matrix: numeric constants and functional options for Dense creation.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - The comparison tolerance Epsilon is a compile-time constant with no setter.
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// Epsilon is the absolute tolerance used by Equal and by the singularity
	// guard of Inverse: |a-b| <= Epsilon counts as equal, |det| < Epsilon is singular.
	Epsilon = 1e-7

	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Apply.
	// Off by default: the algebra accepts any float64 the caller stores.
	DefaultValidateNaNInf = false
)

// Shape used by NewDefault.
const (
	// DefaultRows is the row count of a matrix built by NewDefault.
	DefaultRows = 3

	// DefaultCols is the column count of a matrix built by NewDefault.
	DefaultCols = 3
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is resolved once per constructor call via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, Set and Apply reject NaN and ±Inf with ErrNaNInf.
//
// Notes:
//   - The flag travels with the matrix: Clone, CopyFrom, Transfer and resize keep it.
//   - Results of kernels (Add, Mul, Inverse, ...) inherit the policy of their
//     first operand when it is a *Dense.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidateNaNInf reports whether finite-only validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewMatrixOptions resolves opts against the defaults; exposed for callers
// that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over the defaults in order
// (last-writer-wins). nil setters are skipped.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
