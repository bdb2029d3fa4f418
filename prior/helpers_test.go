// SPDX-License-Identifier: MIT
package prior_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/prior"
)

// randomProblem returns a well-conditioned rows×cols Jacobian, the true
// coefficient vector and y = A·x.
func randomProblem(seed int64, rows, cols int, x []float64) (*mat.Dense, *mat.VecDense) {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
	}
	y := mat.NewVecDense(rows, nil)
	y.MulVec(a, mat.NewVecDense(cols, x))
	return a, y
}

// flatResult concatenates the column-major flatten of the result maps.
func flatResult(t *testing.T, r *prior.Result) []float64 {
	t.Helper()
	require.NotNil(t, r.Real)
	out := geometry.Flatten(r.Real)
	if r.Imag != nil {
		out = append(out, geometry.Flatten(r.Imag)...)
	}
	return out
}
