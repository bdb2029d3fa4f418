// SPDX-License-Identifier: MIT

// Package matrix provides the complex dense storage and kernels of the
// scattering pipeline.
//
// The matrix package provides:
//
//   - CDense, a row-major complex128 matrix with bounds-checked At/Set and
//     a RawRowView fast path for hot assembly loops.
//   - Add and Mul kernels with fail-fast shape validation; Mul propagates
//     induced currents to the sensors.
//   - LU factorization with partial pivoting and multi-RHS Solve, used for
//     the Method-of-Moments current induction Z·J = −E.
//   - The numerical (ErrNumerical, ErrSingular, ErrNaNInf) and shape
//     (ErrDimensionMismatch) error kinds shared by every stage.
//
// Real-valued matrices (grids, powers, Jacobians) are gonum mat.Dense values;
// this package only covers what gonum does not factorize.
package matrix
