// SPDX-License-Identifier: MIT

// Package geometry is the geometry provider of the tomography pipeline.
//
// It derives, from an explicit config.Config, everything positional the
// forward and inverse stages need:
//
//   - sensor positions on the room boundary (square perimeter or circle),
//   - the ordered transmitter/receiver link set,
//   - centroid lattices of the domain of interest at the forward (fine) and
//     inverse (coarse) resolutions, together with the equivalent cell radius,
//   - the column-major flatten/reshape convention shared by every stage.
//
// Column-major order is the single flattening convention of the module: cell
// (row i, col j) of an m×m map has flat index j·m + i. Object-cell selection,
// Jacobian columns and reconstructed images all go through Index, Flatten and
// Reshape; no other package re-derives the order.
package geometry
