// SPDX-License-Identifier: MIT
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/config"
)

// Grid is an m×m lattice of cell centroids over the domain of interest.
//
// X and Y follow meshgrid layout: column j runs left to right in x, row i runs
// top to bottom in y. Radius is the radius of the circle with the same area
// as one cell, the equivalent-cylinder approximation used by the MoM kernels.
type Grid struct {
	M      int
	Radius float64
	X, Y   *mat.Dense
}

// NewGrid discretizes doi into m×m cells.
//
// Implementation:
//   - Stage 1: cell size gx = Length/m, gy = Width/m.
//   - Stage 2: X[i,j] = x0 + (j+½)·gx and Y[i,j] = y1 − (i+½)·gy where
//     (x0, y1) is the top-left corner: (−L/2, W/2) for centre origin and
//     (0, W) for corner origin.
//
// Errors:
//   - ErrBadCount (m ≤ 0), ErrUnsupportedGeometry, ErrUnsupportedOrigin.
//
// Complexity:
//   - Time O(m²), Space O(m²).
func NewGrid(doi config.DOI, m int) (*Grid, error) {
	if m <= 0 {
		return nil, fmt.Errorf("grids=%d: %w", m, ErrBadCount)
	}
	if doi.Geometry != config.GeometrySquare {
		return nil, fmt.Errorf("doi geometry %q: %w", doi.Geometry, ErrUnsupportedGeometry)
	}
	var x0, y1 float64
	switch doi.Origin {
	case config.OriginCenter:
		x0, y1 = -doi.Length/2, doi.Width/2
	case config.OriginCorner:
		x0, y1 = 0, doi.Width
	default:
		return nil, fmt.Errorf("doi origin %q: %w", doi.Origin, ErrUnsupportedOrigin)
	}

	gx, gy := doi.Length/float64(m), doi.Width/float64(m)
	g := &Grid{
		M:      m,
		Radius: math.Sqrt(gx * gy / math.Pi),
		X:      mat.NewDense(m, m, nil),
		Y:      mat.NewDense(m, m, nil),
	}
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			g.X.Set(i, j, x0+(float64(j)+0.5)*gx)
			g.Y.Set(i, j, y1-(float64(i)+0.5)*gy)
		}
	}

	return g, nil
}

// Len returns the number of cells, m².
func (g *Grid) Len() int { return g.M * g.M }

// Cells returns the centroids in column-major order: cell p = Index(i, j, M).
func (g *Grid) Cells() []Point {
	xs, ys := Flatten(g.X), Flatten(g.Y)
	out := make([]Point, len(xs))
	for p := range out {
		out[p] = Point{X: xs[p], Y: ys[p]}
	}

	return out
}
