// SPDX-License-Identifier: MIT
package forward

import (
	"fmt"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/matrix"
)

// RemoveSelfLinks drops the diagonal of an N×N field and returns the compact
// (N−1)×N matrix: column tx keeps the receivers rx ≠ tx in ascending order,
// so entry (rx, tx) moves to row rx when rx < tx and to row rx−1 otherwise.
// The result equals flatten(F) → drop diagonal → reshape(N, N−1) → transpose.
//
// Errors: ErrDimensionMismatch for non-square input, ErrInvalidDimensions for N < 2.
// Complexity: O(N²).
func RemoveSelfLinks(field *matrix.CDense) (*matrix.CDense, error) {
	if err := matrix.ValidateNotNil(field); err != nil {
		return nil, forwardErrorf("RemoveSelfLinks", err)
	}
	if err := matrix.ValidateSquare(field); err != nil {
		return nil, forwardErrorf("RemoveSelfLinks", err)
	}
	n := field.Rows()
	out, err := matrix.NewCDense(n-1, n)
	if err != nil {
		return nil, forwardErrorf("RemoveSelfLinks", err)
	}
	var rx, tx int
	for rx = 0; rx < n; rx++ {
		src := field.RawRowView(rx)
		for tx = 0; tx < n; tx++ {
			if rx == tx {
				continue
			}
			out.RawRowView(geometry.Slot(rx, tx))[tx] = src[tx]
		}
	}

	return out, nil
}

// ZeroSelfLinks returns a copy of a square field with its diagonal set to 0.
func ZeroSelfLinks(field *matrix.CDense) (*matrix.CDense, error) {
	if err := matrix.ValidateNotNil(field); err != nil {
		return nil, forwardErrorf("ZeroSelfLinks", err)
	}
	if err := matrix.ValidateSquare(field); err != nil {
		return nil, forwardErrorf("ZeroSelfLinks", err)
	}
	out := field.Clone()
	for i := 0; i < out.Rows(); i++ {
		out.RawRowView(i)[i] = 0
	}

	return out, nil
}

// ApplySelfLinks dispatches on the policy name.
func ApplySelfLinks(field *matrix.CDense, policy string) (*matrix.CDense, error) {
	switch policy {
	case config.SelfLinksRemove:
		return RemoveSelfLinks(field)
	case config.SelfLinksZero:
		return ZeroSelfLinks(field)
	default:
		return nil, fmt.Errorf("%q: %w", policy, ErrSelfLinkPolicy)
	}
}
