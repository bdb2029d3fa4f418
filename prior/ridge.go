// SPDX-License-Identifier: MIT
package prior

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// identity is the n×n identity as a mat.Symmetric without storage.
type identity int

func (n identity) Dims() (int, int) { return int(n), int(n) }
func (n identity) T() mat.Matrix     { return n }
func (n identity) SymmetricDim() int { return int(n) }
func (n identity) At(i, j int) float64 {
	if i == j {
		return 1
	}

	return 0
}

// Ridge is Tikhonov regularization with the identity operator.
//
//	alpha form: χ = (AᵀA + α·I)⁻¹ Aᵀy
//	rho form:   χ = ρ·(ρ·AᵀA + (1−ρ)·I)⁻¹ Aᵀy   (used when "rho" is present)
//
// Params: "alpha" ≥ 0, or "rho" ∈ [0, 1].
// Errors: ErrMissingParam, ErrBadParam, ErrShape, matrix.ErrSingular.
func Ridge(ctx context.Context, p Problem, params Params) (*Result, error) {
	blocks, err := p.Validate()
	if err != nil {
		return nil, err
	}
	_, n := p.A.Dims()

	return tikhonov(ctx, p, params, blocks, identity(n))
}

// tikhonov solves the alpha or rho form with an arbitrary symmetric operator Q.
func tikhonov(ctx context.Context, p Problem, params Params, blocks int, q mat.Symmetric) (*Result, error) {
	var (
		lhs *mat.SymDense
		rhs *mat.VecDense
	)
	if params.Has("rho") {
		rho, err := params.unit("rho")
		if err != nil {
			return nil, err
		}
		lhs = blend(rho, p.gram(), 1-rho, q)
		rhs = normalRHS(p, rho)
	} else {
		alpha, err := params.nonNegative("alpha")
		if err != nil {
			return nil, err
		}
		lhs = blend(1, p.gram(), alpha, q)
		rhs = normalRHS(p, 1)
	}
	x, err := solveNormal(ctx, lhs, rhs)
	if err != nil {
		return nil, err
	}

	return finish(p, x, blocks)
}
