// SPDX-License-Identifier: MIT

// Package mwtomo simulates 2D microwave scattering inside a room ringed by
// transceivers and inverts received power back into a permittivity contrast
// map of the domain of interest (DOI).
//
// What is in the box?
//
//	A deterministic, batch-oriented pipeline built from small packages:
//		• Forward model: Method-of-Moments solver with pivoted complex LU
//		• Sensitivity models: pseudo-Rytov Jacobians (real, imaginary, split)
//		• Priors: ridge, quadratic smoothing, lasso / elastic net, shrinkage
//		• Orchestrator: model + prior bound to one configuration
//
// Under the hood:
//
//	config/      Config struct, defaults, YAML and .env loading, validation
//	geometry/    sensors, links, DOI grids, the column-major convention
//	em/          Hankel / Bessel kernels, Green's function, power law
//	matrix/      complex dense matrix, LU with partial pivoting, error kinds
//	forward/     MoM forward solver and self-link post-processing
//	inverse/     Jacobian variants and the measurement vector
//	prior/       regularizer bank
//	tomography/  solver orchestrator
//
// Typical flow:
//
//	cfg, _ := config.Load("room.yaml")
//	fwd, _ := forward.New(cfg)
//	res, _ := fwd.Solve(ctx, scatterer)
//	rec, _ := tomography.New(cfg, "prytov", "ridge", prior.Params{"alpha": 1e-2})
//	out, _ := rec.Reconstruct(ctx, res.DirectPower, res.TotalPower)
//
// Errors come in three kinds that callers match with errors.Is:
// config.ErrInvalidConfig, matrix.ErrNumerical and matrix.ErrDimensionMismatch.
package mwtomo
