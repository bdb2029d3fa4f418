// SPDX-License-Identifier: MIT

// Package tomography is the solver orchestrator: it binds one sensitivity
// model to one prior for a fixed configuration and turns measured direct and
// total power into a contrast map.
//
// Names and parameters are checked by New before any numerical work. The
// Jacobian (and, for normal-equation priors, its Gram matrix) is built on the
// first Reconstruct call and reused by later calls. Each call is tagged with a
// run id in its log records.
package tomography
