// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwtomo/matrix"
)

func TestWithPivotTolerance_PanicsOnInvalid(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { matrix.WithPivotTolerance(v) })
	}
}

func TestWithNoValidateNaNInf(t *testing.T) {
	bad := MustCDense(t, 1, 1, complex(math.Inf(1), 0))
	_, err := matrix.Factorize(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// With validation off the non-finite pivot dominates and the solve proceeds.
	f, err := matrix.Factorize(bad, matrix.WithNoValidateNaNInf(), matrix.WithPivotTolerance(0))
	require.NoError(t, err)
	x, err := f.Solve(MustCDense(t, 1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, complex128(0), MustAt(t, x, 0, 0))
}
