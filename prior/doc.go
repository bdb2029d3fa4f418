// SPDX-License-Identifier: MIT

// Package prior is the regularizer bank of the tomography pipeline.
//
// Every prior solves the same linear least-squares problem A·χ ≈ y under a
// different regularization and returns the contrast map reshaped to the
// inverse grid (column-major). Priors are plain functions registered by name:
//
//	ridge, ridge_complex           Tikhonov with identity
//	qs2D, qs2D_complex             quadratic smoothing with finite differences
//	lasso, elastic_net             sparse regression by coordinate descent
//	identity_shrinkage,
//	sv_shrinkage, svmc_shrinkage   covariance-shrinkage targets
//
// The *_complex names are aliases: every prior infers the block structure
// (m² columns, or 2·m² for a real/imaginary split) from the Jacobian.
//
// Parameters come as a string→float64 bag. A missing required key is a
// configuration error; a singular or non-finite solve is a numerical error.
package prior
