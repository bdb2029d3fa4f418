// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *CDense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b *CDense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Complexity: O(1).
func ValidateSquare(m *CDense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape guard.
func ValidateBinarySameShape(a, b *CDense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateFinite scans m and returns ErrNaNInf at the first non-finite entry
// (either component NaN or ±Inf). Complexity: O(r*c).
func ValidateFinite(m *CDense) error {
	for idx, v := range m.data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return validatorErrorf(
				fmt.Sprintf("ValidateFinite(%d,%d)", idx/m.c, idx%m.c), ErrNaNInf)
		}
	}

	return nil
}

// maxAbs returns max |m[i,j]| (0 for an all-zero matrix).
func maxAbs(data []complex128) float64 {
	best := 0.0
	for _, v := range data {
		best = math.Max(best, cmplx.Abs(v))
	}

	return best
}
