// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the complex kernels.
//   - Keep all data finite and well-formed unless a test asks otherwise.

package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwtomo/matrix"
)

// tol is the absolute tolerance used when comparing computed complex values.
const tol = 1e-10

// MustCDense allocates an r×c matrix filled row-major from vals (zero-padded)
// or fails the test.
func MustCDense(t *testing.T, r, c int, vals ...complex128) *matrix.CDense {
	t.Helper()
	m, err := matrix.NewCDense(r, c)
	require.NoError(t, err)
	for idx, v := range vals {
		require.NoError(t, m.Set(idx/c, idx%c, v))
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.CDense, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts |got-want| ≤ tol entry by entry.
func requireClose(t *testing.T, want, got *matrix.CDense) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w, g := MustAt(t, want, i, j), MustAt(t, got, i, j)
			require.LessOrEqualf(t, cmplx.Abs(w-g), tol, "(%d,%d): want %v got %v", i, j, w, g)
		}
	}
}
