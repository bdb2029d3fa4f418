// SPDX-License-Identifier: MIT

// Package inverse builds the linear sensitivity models (Jacobians) that map a
// contrast image on the inverse grid to per-link log-power changes, and the
// measurement vector those models are fitted to.
//
// All variants share the pseudo-Rytov kernel
//
//	q_p(tx, rx) = k²·G[rx, p]·E_inc[p, tx] / E_d[rx, tx]
//
// and differ only in which part of q they keep. Variants are a closed set of
// tags dispatched by name; there is no type hierarchy.
package inverse
