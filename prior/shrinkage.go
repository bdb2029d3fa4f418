// SPDX-License-Identifier: MIT
package prior

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// shrinkTarget builds the shrinkage target T from the Gram matrix.
type shrinkTarget func(g *mat.SymDense) mat.Symmetric

// IdentityShrinkage solves χ = (s·AᵀA + (1−s)·I)⁻¹ Aᵀy with s = "intensity".
func IdentityShrinkage(ctx context.Context, p Problem, params Params) (*Result, error) {
	return shrink(ctx, p, params, func(g *mat.SymDense) mat.Symmetric {
		return identity(g.SymmetricDim())
	})
}

// SVShrinkage shrinks towards the diagonal of AᵀA (single-variance target).
func SVShrinkage(ctx context.Context, p Problem, params Params) (*Result, error) {
	return shrink(ctx, p, params, diagonalTarget)
}

// SVMCShrinkage shrinks towards diag(AᵀA) plus the mean off-diagonal entry
// everywhere off the diagonal (single variance, mean covariance).
func SVMCShrinkage(ctx context.Context, p Problem, params Params) (*Result, error) {
	return shrink(ctx, p, params, func(g *mat.SymDense) mat.Symmetric {
		n := g.SymmetricDim()
		t := diagonalTarget(g).(*mat.SymDense)
		if n < 2 {
			return t
		}
		var sum float64
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				sum += 2 * g.At(i, j)
			}
		}
		mean := sum / float64(n*n-n)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				t.SetSym(i, j, mean)
			}
		}

		return t
	})
}

func diagonalTarget(g *mat.SymDense) mat.Symmetric {
	n := g.SymmetricDim()
	t := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		t.SetSym(i, i, g.At(i, i))
	}

	return t
}

// shrink solves (s·G + (1−s)·T)⁻¹ Aᵀy for the target built by target.
func shrink(ctx context.Context, p Problem, params Params, target shrinkTarget) (*Result, error) {
	blocks, err := p.Validate()
	if err != nil {
		return nil, err
	}
	s, err := params.unit("intensity")
	if err != nil {
		return nil, err
	}
	g := p.gram()
	x, err := solveNormal(ctx, blend(s, g, 1-s, target(g)), normalRHS(p, 1))
	if err != nil {
		return nil, err
	}

	return finish(p, x, blocks)
}
