// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwtomo/matrix"
)

func TestValidators(t *testing.T) {
	a := MustCDense(t, 2, 2)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(a))
	require.ErrorIs(t, matrix.ValidateSquare(MustCDense(t, 1, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustCDense(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateFinite(a))
	require.NoError(t, a.Set(1, 0, complex(0, math.NaN())))
	require.ErrorIs(t, matrix.ValidateFinite(a), matrix.ErrNaNInf)
}
