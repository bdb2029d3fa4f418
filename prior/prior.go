// SPDX-License-Identifier: MIT
package prior

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/geometry"
)

// Problem is one regularized inversion.
type Problem struct {
	// A is the L×(B·M²) Jacobian, B ∈ {1, 2}.
	A *mat.Dense
	// Data is the length-L measurement vector.
	Data *mat.VecDense
	// M is the side of the inverse grid.
	M int
	// Convention selects the output map; empty means config.ConventionContrast.
	Convention string
	// Gram optionally carries a precomputed AᵀA. It is computed when nil.
	Gram *mat.SymDense
}

// Result is a reconstructed contrast map on the M×M inverse grid.
type Result struct {
	Real *mat.Dense
	// Imag is nil for single-block Jacobians.
	Imag *mat.Dense

	// Iterations is the sweep count of iterative priors (0 for closed forms).
	Iterations int
	// Converged is false when an iterative prior hit its iteration cap.
	Converged bool
}

// Func is the common signature of every prior.
type Func func(ctx context.Context, p Problem, params Params) (*Result, error)

// entry is one registered prior; gram marks priors that solve normal equations.
type entry struct {
	fn   Func
	gram bool
}

var registry = map[string]entry{
	"ridge":              {Ridge, true},
	"ridge_complex":      {Ridge, true},
	"qs2D":               {QuadraticSmoothing, true},
	"qs2D_complex":       {QuadraticSmoothing, true},
	"lasso":              {Lasso, false},
	"elastic_net":        {ElasticNet, false},
	"identity_shrinkage": {IdentityShrinkage, true},
	"sv_shrinkage":       {SVShrinkage, true},
	"svmc_shrinkage":     {SVMCShrinkage, true},
}

// Lookup returns the prior registered under name.
func Lookup(name string) (Func, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPrior)
	}

	return e.fn, nil
}

// UsesGram reports whether the named prior consumes AᵀA, so callers can
// precompute and cache it in Problem.Gram.
func UsesGram(name string) bool { return registry[name].gram }

// Names lists the registered prior names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Validate checks the shapes and the convention of p and returns the number
// of column blocks (1 or 2).
//
// Errors:
//   - ErrShape when rows ≠ len(Data), columns ∉ {M², 2·M²}, or Gram has the wrong size.
//   - config.ErrInvalidConfig for an unknown convention.
func (p Problem) Validate() (int, error) {
	if p.A == nil || p.Data == nil || p.M <= 0 {
		return 0, fmt.Errorf("incomplete problem (A=%t, Data=%t, M=%d): %w", p.A != nil, p.Data != nil, p.M, ErrShape)
	}
	switch p.Convention {
	case "", config.ConventionContrast, config.ConventionPermittivity:
	default:
		return 0, fmt.Errorf("%w: convention %q", config.ErrInvalidConfig, p.Convention)
	}
	r, c := p.A.Dims()
	if r != p.Data.Len() {
		return 0, fmt.Errorf("jacobian has %d rows, data has %d: %w", r, p.Data.Len(), ErrShape)
	}
	cells := p.M * p.M
	var blocks int
	switch c {
	case cells:
		blocks = 1
	case 2 * cells:
		blocks = 2
	default:
		return 0, fmt.Errorf("jacobian has %d columns, grid %dx%d: %w", c, p.M, p.M, ErrShape)
	}
	if p.Gram != nil && p.Gram.SymmetricDim() != c {
		return 0, fmt.Errorf("gram is %d, jacobian has %d columns: %w", p.Gram.SymmetricDim(), c, ErrShape)
	}

	return blocks, nil
}

// finish reshapes the solution vector into the output maps and applies the
// output convention.
func finish(p Problem, x []float64, blocks int) (*Result, error) {
	cells := p.M * p.M
	res := &Result{Converged: true}
	var err error
	if res.Real, err = geometry.Reshape(x[:cells], p.M, p.M); err != nil {
		return nil, err
	}
	if blocks == 2 {
		if res.Imag, err = geometry.Reshape(x[cells:], p.M, p.M); err != nil {
			return nil, err
		}
	}
	if p.Convention == config.ConventionPermittivity {
		var i, j int
		for i = 0; i < p.M; i++ {
			for j = 0; j < p.M; j++ {
				res.Real.Set(i, j, res.Real.At(i, j)+1)
			}
		}
	}

	return res, nil
}
