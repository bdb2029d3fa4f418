// SPDX-License-Identifier: MIT

// Package em holds the 2D free-space electromagnetic kernels of the pipeline:
// cylindrical Hankel and Bessel functions, the scalar Green's function, the
// direct and incident fields radiated by line sources at the sensors, the
// Green integral over an equivalent circular cell, and the received-power law.
//
// All kernels are pure functions of positions and a Wave; they never read
// global state. Field matrices are laid out [receiver-or-cell, transmitter].
package em

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/mwtomo/config"
)

// Impedance is the free-space wave impedance η = 120π Ω.
const Impedance = 120 * math.Pi

// Wave carries the derived excitation constants.
type Wave struct {
	Frequency  float64 // Hz
	Wavelength float64 // m
	K          float64 // rad/m
}

// NewWave derives λ and k from the configured frequency.
func NewWave(cfg config.Config) Wave {
	return Wave{
		Frequency:  cfg.System.Frequency,
		Wavelength: cfg.Wavelength(),
		K:          cfg.WaveNumber(),
	}
}

// Hankel0 returns H0⁽¹⁾(x) = J0(x) + i·Y0(x).
func Hankel0(x float64) complex128 { return complex(math.J0(x), math.Y0(x)) }

// Hankel1 returns H1⁽¹⁾(x) = J1(x) + i·Y1(x).
func Hankel1(x float64) complex128 { return complex(math.J1(x), math.Y1(x)) }

// BesselJ1 returns J1(x).
func BesselJ1(x float64) float64 { return math.J1(x) }

// Green returns the 2D free-space Green's function (i/4)·H0(k·d).
// The source point itself (d == 0) is singular and yields complex infinity.
func Green(k, d float64) complex128 {
	if d == 0 {
		return cmplx.Inf()
	}

	return 0.25i * Hankel0(k*d)
}
