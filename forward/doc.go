// SPDX-License-Identifier: MIT

// Package forward implements the Method-of-Moments (MoM) forward scattering
// solver and the field post-processing stage.
//
// Given a complex relative-permittivity map on the forward grid, Solve
// computes the field at every receiver for every transmitter:
//
//	E_total = E_direct + E_scattered
//
// where E_scattered comes from induced currents on the object cells
// (cells with ε ≠ 1). The currents solve Z·J = −E_inc restricted to object
// cells; Z is assembled row by row by a bounded worker pool and factorized
// with the pivoted complex LU of package matrix.
//
// The scatterer-independent fields (direct and incident) are computed once per
// Solver and reused across calls. Every matrix in a Result is fresh.
//
// Self links (tx == rx) are handled by the policy of config.Forward.SelfLinks:
// "remove" yields compact (N−1)×N matrices, "zero" keeps N×N with a zero
// diagonal.
package forward
