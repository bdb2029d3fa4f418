// SPDX-License-Identifier: MIT
package prior

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Difference directions over the column-major flattened grid.
const (
	// Horizontal pairs cell p with p+1 (the next row of the same column).
	Horizontal = "horizontal"
	// Vertical pairs cell p with p+m (the same row of the next column).
	Vertical = "vertical"
)

// stencils holds the finite-difference taps of each order.
var stencils = map[int][]float64{
	1: {1, -1},
	2: {1, -2, 1},
}

// tap is one non-zero coefficient of a difference row.
type tap struct {
	col  int
	coef float64
}

// differenceRows returns, for every row of the n×n difference operator, its
// taps. Row p starts at column p and steps by the direction shift; rows whose
// taps would leave the m×m block of p are empty, so the operator annihilates
// constants. n must be a multiple of m²; each m² block is independent.
func differenceRows(m, n int, direction string, order int) ([][]tap, error) {
	coefs, ok := stencils[order]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", order, ErrUnknownOrder)
	}
	cells := m * m
	if m <= 0 || n <= 0 || n%cells != 0 {
		return nil, fmt.Errorf("difference operator %d columns for %dx%d grid: %w", n, m, m, ErrShape)
	}

	reach := len(coefs) - 1
	rows := make([][]tap, n)
	for p := 0; p < n; p++ {
		local := p % cells
		i, j := local%m, local/m // column-major (row, col)
		var shift int
		switch direction {
		case Horizontal:
			if i+reach >= m {
				continue
			}
			shift = 1
		case Vertical:
			if j+reach >= m {
				continue
			}
			shift = m
		default:
			return nil, fmt.Errorf("%q: %w", direction, ErrUnknownDirection)
		}
		row := make([]tap, len(coefs))
		for k, c := range coefs {
			row[k] = tap{col: p + k*shift, coef: c}
		}
		rows[p] = row
	}

	return rows, nil
}

// DifferenceOperator returns the n×n finite-difference matrix D of the given
// direction and order (1: [1, −1], 2: [1, −2, 1]) over an m×m column-major
// grid, repeated block-diagonally when n = 2·m². Rows whose stencil would
// cross the grid edge are zero, so D·1 = 0.
//
// Errors: ErrUnknownDirection, ErrUnknownOrder, ErrShape.
func DifferenceOperator(m, n int, direction string, order int) (*mat.Dense, error) {
	rows, err := differenceRows(m, n, direction, order)
	if err != nil {
		return nil, err
	}
	d := mat.NewDense(n, n, nil)
	for p, row := range rows {
		for _, t := range row {
			d.Set(p, t.col, t.coef)
		}
	}

	return d, nil
}

// SmoothingPenalty returns L = DhᵀDh + DvᵀDv without forming the dense D
// matrices: each stencil row adds its outer product to L.
// Complexity: O(n·order²).
func SmoothingPenalty(m, n, order int) (*mat.SymDense, error) {
	l := mat.NewSymDense(n, nil)
	for _, dir := range []string{Horizontal, Vertical} {
		rows, err := differenceRows(m, n, dir, order)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			for _, a := range row {
				for _, b := range row {
					if a.col <= b.col {
						l.SetSym(a.col, b.col, l.At(a.col, b.col)+a.coef*b.coef)
					}
				}
			}
		}
	}

	return l, nil
}

// QuadraticSmoothing is Tikhonov regularization with the 2D smoothing
// penalty L = DhᵀDh + DvᵀDv.
//
//	alpha form: χ = (AᵀA + α·L)⁻¹ Aᵀy
//	rho form:   χ = ρ·(ρ·AᵀA + (1−ρ)·L)⁻¹ Aᵀy
//
// Params: "alpha" ≥ 0 or "rho" ∈ [0, 1]; optional "order" (1 default, or 2).
// Split Jacobians get a block-diagonal penalty, so the real and imaginary
// maps are smoothed independently.
func QuadraticSmoothing(ctx context.Context, p Problem, params Params) (*Result, error) {
	blocks, err := p.Validate()
	if err != nil {
		return nil, err
	}
	order, err := params.integer("order", 1)
	if err != nil {
		return nil, err
	}
	_, n := p.A.Dims()
	l, err := SmoothingPenalty(p.M, n, order)
	if err != nil {
		return nil, err
	}

	return tikhonov(ctx, p, params, blocks, l)
}
