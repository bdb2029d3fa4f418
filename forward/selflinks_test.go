// SPDX-License-Identifier: MIT
package forward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/forward"
	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/matrix"
)

// referenceRemove reproduces flatten → drop diagonal → reshape(N, N−1) → transpose.
func referenceRemove(field *matrix.CDense) [][]complex128 {
	n := field.Rows()
	flat := geometry.FlattenComplex(field)
	kept := make([]complex128, 0, n*(n-1))
	for p, v := range flat {
		if p%n != p/n { // row != col
			kept = append(kept, v)
		}
	}
	// C-order reshape to n×(n−1), then transpose to (n−1)×n.
	out := make([][]complex128, n-1)
	for i := range out {
		out[i] = make([]complex128, n)
	}
	var tx, k int
	for tx = 0; tx < n; tx++ {
		for k = 0; k < n-1; k++ {
			out[k][tx] = kept[tx*(n-1)+k]
		}
	}
	return out
}

func TestRemoveSelfLinks_MatchesReference(t *testing.T) {
	const n = 4
	data := make([]complex128, n*n)
	for i := range data {
		data[i] = complex(float64(i), -float64(i))
	}
	field, err := matrix.NewCDenseFrom(n, n, data)
	require.NoError(t, err)

	got, err := forward.RemoveSelfLinks(field)
	require.NoError(t, err)
	want := referenceRemove(field)

	r, c := got.Dims()
	require.Equal(t, n-1, r)
	require.Equal(t, n, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			assert.Equalf(t, want[i][j], at(t, got, i, j), "(%d,%d)", i, j)
		}
	}

	// Column tx lists receivers rx ≠ tx in ascending order.
	assert.Equal(t, at(t, field, 0, 2), at(t, got, geometry.Slot(0, 2), 2))
	assert.Equal(t, at(t, field, 3, 2), at(t, got, geometry.Slot(3, 2), 2))
	assert.Equal(t, 2, geometry.Slot(3, 2))
}

func TestSelfLinkPolicies(t *testing.T) {
	field, err := matrix.NewCDenseFill(3, 3, 5i)
	require.NoError(t, err)

	z, err := forward.ApplySelfLinks(field, config.SelfLinksZero)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), at(t, z, 1, 1))
	assert.Equal(t, 5i, at(t, z, 0, 1))
	assert.Equal(t, 5i, at(t, field, 1, 1), "input untouched")

	_, err = forward.ApplySelfLinks(field, "keep")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	rect, err := matrix.NewCDense(2, 3)
	require.NoError(t, err)
	_, err = forward.RemoveSelfLinks(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
