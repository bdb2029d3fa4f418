// SPDX-License-Identifier: MIT
package inverse

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/config"
	"github.com/katalvlaran/mwtomo/em"
	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/matrix"
)

// Background holds the scatterer-independent quantities on the inverse grid.
type Background struct {
	Wave    em.Wave
	Grid    *geometry.Grid
	Sensors []geometry.Point
	Links   []geometry.Link

	Direct   *matrix.CDense // N×N [rx, tx], singular diagonal
	Incident *matrix.CDense // m²×N [cell, tx]
	Integral *matrix.CDense // N×m² [sensor, cell]
}

// NewBackground computes the direct field, the incident field on the inverse
// grid and the Green integral for cfg.
//
// Errors: config.ErrInvalidConfig.
// Complexity: O(N² + N·m²).
func NewBackground(cfg config.Config) (*Background, error) {
	geo, err := geometry.NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	return NewBackgroundFrom(geo)
}

// NewBackgroundFrom reuses an existing geometry provider.
func NewBackgroundFrom(geo *geometry.Provider) (*Background, error) {
	grid, err := geo.Grid(geometry.Inverse)
	if err != nil {
		return nil, err
	}
	w := em.NewWave(geo.Config())
	cells := grid.Cells()
	sensors := geo.Sensors()

	return &Background{
		Wave:     w,
		Grid:     grid,
		Sensors:  sensors,
		Links:    geo.Links(),
		Direct:   em.DirectField(w, sensors),
		Incident: em.IncidentField(w, sensors, cells),
		Integral: em.GreenIntegral(w, grid.Radius, sensors, cells),
	}, nil
}

// Build returns the len(Links) × (Blocks·m²) Jacobian of variant v. Row i
// corresponds to bg.Links[i]; column p to inverse-grid cell p in column-major
// order (plus m² for the imaginary block of ComplexSplit). Self-pair links
// produce zero rows.
//
// Errors: ctx.Err() when cancelled (checked per row).
// Complexity: O(L·m²).
func Build(ctx context.Context, bg *Background, v Variant) (*mat.Dense, error) {
	if v < Real || v > Imag {
		return nil, fmt.Errorf("%v: %w", v, ErrUnknownModel)
	}
	cells := bg.Grid.Len()
	a := mat.NewDense(len(bg.Links), v.Blocks()*cells, nil)
	k2 := complex(bg.Wave.K*bg.Wave.K, 0)

	for i, l := range bg.Links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if l.Self() {
			continue
		}
		ed, err := bg.Direct.At(l.Rx, l.Tx)
		if err != nil {
			return nil, fmt.Errorf("inverse: link %d: %w", i, err)
		}
		g := bg.Integral.RawRowView(l.Rx)
		row := a.RawRowView(i)
		for p := 0; p < cells; p++ {
			q := k2 * g[p] * bg.Incident.RawRowView(p)[l.Tx] / ed
			switch v {
			case Real:
				row[p] = real(q)
			case ComplexSplit:
				row[p] = real(q)
				row[cells+p] = -imag(q)
			case Imag:
				row[p] = -imag(q)
			}
		}
	}
	if !finite(a) {
		return nil, fmt.Errorf("inverse: %v jacobian: %w", v, matrix.ErrNaNInf)
	}

	return a, nil
}

// rytovScale is 10·log10(e²), the dB value of one neper of log-amplitude.
var rytovScale = 10 * math.Log10(math.Exp(2))

// Data returns the measurement vector (P_t − P_d)/(10·log10(e²)), one entry
// per link in link order.
//
// Power matrices may be compact (N−1)×N (self links removed) or full N×N.
// For the compact layout the result equals the column-major flatten of
// (P_t − P_d). Entries where both powers are the same infinity (zero-filled
// self links) are 0.
//
// Errors: matrix.ErrDimensionMismatch when the shapes disagree with each
// other or with the sensor count, or when a self link is addressed in the
// compact layout.
func Data(links []geometry.Link, sensors int, total, direct mat.Matrix) (*mat.VecDense, error) {
	tr, tc := total.Dims()
	dr, dc := direct.Dims()
	if tr != dr || tc != dc || tc != sensors {
		return nil, fmt.Errorf("inverse: data: total %dx%d, direct %dx%d, sensors %d: %w",
			tr, tc, dr, dc, sensors, matrix.ErrDimensionMismatch)
	}
	compact := tr == sensors-1
	if !compact && tr != sensors {
		return nil, fmt.Errorf("inverse: data: %d rows for %d sensors: %w", tr, sensors, matrix.ErrDimensionMismatch)
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("inverse: data: empty link set: %w", matrix.ErrInvalidDimensions)
	}
	out := mat.NewVecDense(len(links), nil)
	for i, l := range links {
		if l.Tx < 0 || l.Tx >= sensors || l.Rx < 0 || l.Rx >= sensors {
			return nil, fmt.Errorf("inverse: data: link %d %+v: %w", i, l, matrix.ErrOutOfRange)
		}
		row := l.Rx
		if compact {
			if l.Self() {
				return nil, fmt.Errorf("inverse: data: self link %d in compact layout: %w", i, matrix.ErrDimensionMismatch)
			}
			row = geometry.Slot(l.Rx, l.Tx)
		}
		pt, pd := total.At(row, l.Tx), direct.At(row, l.Tx)
		if math.IsInf(pt, 0) && pt == pd {
			continue
		}
		out.SetVec(i, (pt-pd)/rytovScale)
	}

	return out, nil
}

// finite reports whether every entry of a is finite.
func finite(a mat.Matrix) bool {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
