// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// complex kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the relative pivot floor of LU: a pivot whose
	// modulus is below tol·max|A| marks the matrix as numerically singular.
	DefaultPivotTolerance = 1e-13

	// DefaultValidateNaNInf toggles strict finite-value validation of solve results.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotTolerance sets the relative pivot floor used by LU.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 only rejects exact zero pivots.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithNoValidateNaNInf disables the finite-value check on solve results (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
