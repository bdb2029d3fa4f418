// SPDX-License-Identifier: MIT
package prior_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/matrix"
	"github.com/katalvlaran/mwtomo/prior"
)

func TestRidge_RecoversExactSolution(t *testing.T) {
	want := []float64{0.5, -1, 2, 0.25}
	a, y := randomProblem(1, 12, 4, want)
	ctx := context.Background()

	for name, params := range map[string]prior.Params{
		"alpha": {"alpha": 1e-12},
		"rho":   {"rho": 1},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2}, params)
			require.NoError(t, err)
			assert.Nil(t, res.Imag)
			assert.InDeltaSlice(t, want, flatResult(t, res), 1e-8)
		})
	}
}

func TestRidge_ClosedFormAndConventions(t *testing.T) {
	a := mat.NewDense(4, 4, []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})
	y := mat.NewVecDense(4, []float64{2, 4, 6, 8})
	ctx := context.Background()

	res, err := prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2}, prior.Params{"alpha": 1})
	require.NoError(t, err)
	// (I + I)⁻¹ y, laid out column-major on the 2×2 grid.
	assert.InDelta(t, 1.0, res.Real.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, res.Real.At(1, 0), 1e-12)
	assert.InDelta(t, 3.0, res.Real.At(0, 1), 1e-12)

	perm, err := prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2, Convention: config.ConventionPermittivity},
		prior.Params{"alpha": 1})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, perm.Real.At(0, 0), 1e-12)

	// rho form: ρ·(ρ·I + (1−ρ)·I)⁻¹ y = ρ·y.
	rho, err := prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2}, prior.Params{"rho": 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, rho.Real.At(1, 1), 1e-12)
}

func TestRidge_SplitJacobian(t *testing.T) {
	want := []float64{1, 2, 3, 4, -1, -2, -3, -4}
	a, y := randomProblem(2, 20, 8, want)
	res, err := prior.Lookup("ridge_complex")
	require.NoError(t, err)
	out, err := res(context.Background(), prior.Problem{A: a, Data: y, M: 2}, prior.Params{"alpha": 1e-12})
	require.NoError(t, err)
	require.NotNil(t, out.Imag)
	assert.InDeltaSlice(t, want, flatResult(t, out), 1e-8)
	assert.InDelta(t, -2.0, out.Imag.At(1, 0), 1e-8)
}

func TestRidge_Errors(t *testing.T) {
	a, y := randomProblem(3, 6, 4, []float64{1, 1, 1, 1})
	ctx := context.Background()

	_, err := prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2}, prior.Params{})
	require.ErrorIs(t, err, prior.ErrMissingParam)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2}, prior.Params{"rho": 1.5})
	require.ErrorIs(t, err, prior.ErrBadParam)

	_, err = prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 3}, prior.Params{"alpha": 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = prior.Ridge(ctx, prior.Problem{A: a, Data: mat.NewVecDense(5, nil), M: 2}, prior.Params{"alpha": 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2, Convention: "absolute"}, prior.Params{"alpha": 1})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = prior.Ridge(ctx, prior.Problem{A: a, Data: y, M: 2, Gram: mat.NewSymDense(3, nil)}, prior.Params{"alpha": 1})
	require.ErrorIs(t, err, prior.ErrShape)

	zero := mat.NewDense(6, 4, nil)
	_, err = prior.Ridge(ctx, prior.Problem{A: zero, Data: y, M: 2}, prior.Params{"alpha": 0})
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.ErrorIs(t, err, matrix.ErrNumerical)
}

func TestRidge_UsesGivenGram(t *testing.T) {
	a, y := randomProblem(4, 10, 4, []float64{1, 0, 0, 1})
	ctx := context.Background()
	p := prior.Problem{A: a, Data: y, M: 2}

	plain, err := prior.Ridge(ctx, p, prior.Params{"alpha": 0.1})
	require.NoError(t, err)
	p.Gram = prior.Gram(a)
	cached, err := prior.Ridge(ctx, p, prior.Params{"alpha": 0.1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, flatResult(t, plain), flatResult(t, cached), 1e-12)
}

func TestDifferenceOperator_AnnihilatesConstants(t *testing.T) {
	for _, tc := range []struct {
		m, n      int
		direction string
		order     int
	}{
		{3, 9, prior.Horizontal, 1},
		{3, 9, prior.Vertical, 1},
		{4, 16, prior.Horizontal, 2},
		{4, 32, prior.Vertical, 2},
	} {
		d, err := prior.DifferenceOperator(tc.m, tc.n, tc.direction, tc.order)
		require.NoError(t, err)
		ones := make([]float64, tc.n)
		for i := range ones {
			ones[i] = 1
		}
		var out mat.VecDense
		out.MulVec(d, mat.NewVecDense(tc.n, ones))
		assert.Zerof(t, mat.Norm(&out, 2), "%+v", tc)
		assert.Greater(t, mat.Norm(d, 1), 0.0)
	}
}

func TestDifferenceOperator_Structure(t *testing.T) {
	h, err := prior.DifferenceOperator(3, 9, prior.Horizontal, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, h.At(0, 0))
	assert.Equal(t, -1.0, h.At(0, 1))
	assert.Zero(t, mat.Norm(h.RowView(2), 2), "row at the bottom edge is cleared")
	assert.Equal(t, -1.0, h.At(3, 4))

	v, err := prior.DifferenceOperator(3, 9, prior.Vertical, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v.At(0, 3))
	for row := 6; row < 9; row++ {
		assert.Zero(t, mat.Norm(v.RowView(row), 2))
	}

	h2, err := prior.DifferenceOperator(3, 18, prior.Horizontal, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2, 1}, []float64{h2.At(9, 9), h2.At(9, 10), h2.At(9, 11)})
	assert.Zero(t, h2.At(8, 9), "blocks are not coupled")

	_, err = prior.DifferenceOperator(3, 9, "diagonal", 1)
	require.ErrorIs(t, err, prior.ErrUnknownDirection)
	_, err = prior.DifferenceOperator(3, 9, prior.Vertical, 3)
	require.ErrorIs(t, err, prior.ErrUnknownOrder)
	_, err = prior.DifferenceOperator(3, 10, prior.Vertical, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSmoothingPenalty_MatchesDenseOperators(t *testing.T) {
	for _, order := range []int{1, 2} {
		l, err := prior.SmoothingPenalty(4, 32, order)
		require.NoError(t, err)

		var want, tmp mat.Dense
		for _, dir := range []string{prior.Horizontal, prior.Vertical} {
			d, err := prior.DifferenceOperator(4, 32, dir, order)
			require.NoError(t, err)
			tmp.Mul(d.T(), d)
			if want.IsEmpty() {
				want.CloneFrom(&tmp)
			} else {
				want.Add(&want, &tmp)
			}
		}
		assert.True(t, mat.EqualApprox(&want, l, 1e-12), "order %d", order)
	}
}

func TestQuadraticSmoothing_StrongPenaltyFlattensMap(t *testing.T) {
	x := []float64{1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4}
	a, y := randomProblem(5, 40, 16, x)
	ctx := context.Background()
	p := prior.Problem{A: a, Data: y, M: 4}

	weak, err := prior.QuadraticSmoothing(ctx, p, prior.Params{"alpha": 1e-10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, flatResult(t, weak), 1e-6)

	// First differences only leave constants unpenalized.
	strong, err := prior.QuadraticSmoothing(ctx, p, prior.Params{"alpha": 1e9})
	require.NoError(t, err)
	flat := flatResult(t, strong)
	lo, hi := flat[0], flat[0]
	for _, v := range flat {
		lo, hi = min(lo, v), max(hi, v)
	}
	assert.Less(t, hi-lo, 1e-3)

	_, err = prior.QuadraticSmoothing(ctx, p, prior.Params{"alpha": 1, "order": 5})
	require.ErrorIs(t, err, prior.ErrUnknownOrder)

	for _, order := range []float64{1.7, 0.5, math.NaN()} {
		_, err = prior.QuadraticSmoothing(ctx, p, prior.Params{"alpha": 1, "order": order})
		require.ErrorIs(t, err, prior.ErrBadParam, "order %g", order)
	}
	_, err = prior.QuadraticSmoothing(ctx, p, prior.Params{"alpha": 1, "order": 2})
	require.NoError(t, err)
}
