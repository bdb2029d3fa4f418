// SPDX-License-Identifier: MIT
package prior

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/matrix"
)

// Gram returns AᵀA.
// Complexity: O(L·n²) for an L×n Jacobian.
func Gram(a mat.Matrix) *mat.SymDense {
	_, n := a.Dims()
	g := mat.NewSymDense(n, nil)
	g.SymOuterK(1, a.T())

	return g
}

// gram returns the cached Gram matrix of p or computes it.
func (p Problem) gram() *mat.SymDense {
	if p.Gram != nil {
		return p.Gram
	}

	return Gram(p.A)
}

// normalRHS returns scale·Aᵀy.
func normalRHS(p Problem, scale float64) *mat.VecDense {
	_, n := p.A.Dims()
	rhs := mat.NewVecDense(n, nil)
	rhs.MulVec(p.A.T(), p.Data)
	if scale != 1 {
		rhs.ScaleVec(scale, rhs)
	}

	return rhs
}

// blend returns a·G + b·T for symmetric G and T of equal size.
func blend(a float64, g mat.Symmetric, b float64, t mat.Symmetric) *mat.SymDense {
	n := g.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.SetSym(i, j, a*g.At(i, j)+b*t.At(i, j))
		}
	}

	return out
}

// solveNormal solves the symmetric system lhs·x = rhs.
//
// Implementation:
//   - Stage 1: Cholesky (lhs is SPD for every well-posed prior).
//   - Stage 2: on failure fall back to LU with partial pivoting.
//
// Errors:
//   - matrix.ErrSingular when both factorizations fail or report an
//     ill-conditioned system; matrix.ErrNaNInf for non-finite solutions.
func solveNormal(ctx context.Context, lhs *mat.SymDense, rhs *mat.VecDense) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var x mat.VecDense
	var chol mat.Cholesky
	if chol.Factorize(lhs) {
		if err := chol.SolveVecTo(&x, rhs); err == nil && finiteSlice(x.RawVector().Data) {
			return x.RawVector().Data, nil
		}
	}

	var lu mat.LU
	lu.Factorize(lhs)
	if err := lu.SolveVecTo(&x, false, rhs); err != nil {
		return nil, fmt.Errorf("prior: normal equations: %v: %w", err, matrix.ErrSingular)
	}
	if !finiteSlice(x.RawVector().Data) {
		return nil, fmt.Errorf("prior: normal equations: %w", matrix.ErrNaNInf)
	}

	return x.RawVector().Data, nil
}

func finiteSlice(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}
