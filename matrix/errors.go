// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the numerical stages built on top of it. Algorithms MUST
// return these sentinels (possibly wrapped) and tests MUST check them via
// errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON ERROR KINDS
// -------------------
// Two of the three error kinds of the pipeline live here:
//   - shape kind:     ErrDimensionMismatch, ErrInvalidDimensions, ErrOutOfRange.
//   - numerical kind: ErrNumerical and everything that wraps it (ErrSingular, ErrNaNInf).
//
// Callers that want to retry with a stronger regularization match ErrNumerical;
// callers that fed inconsistent shapes match ErrDimensionMismatch.
// Configuration errors live in package config.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNumerical is the umbrella sentinel for numerical failures.
	ErrNumerical = errors.New("matrix: numerical failure")

	// ErrSingular is returned when a pivot falls below the pivot tolerance
	// during LU factorization, or when a downstream dense solver reports a
	// singular or ill-conditioned system.
	ErrSingular = fmt.Errorf("matrix: singular or ill-conditioned matrix: %w", ErrNumerical)

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", ErrNumerical)
)
