// SPDX-License-Identifier: MIT
package em

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/geometry"
	"github.com/katalvlaran/mwtomo/matrix"
)

// DirectField returns the N×N free-space field E_d[rx, tx] = (i/4)·H0(k·|s_tx − s_rx|).
// The matrix is symmetric (reciprocity); diagonal entries are singular
// (complex infinity) and left to the self-link policy of the caller.
// Complexity: O(N²).
func DirectField(w Wave, sensors []geometry.Point) *matrix.CDense {
	n := len(sensors)
	out := newField(n, n)
	var rx, tx int
	for rx = 0; rx < n; rx++ {
		row := out.RawRowView(rx)
		for tx = 0; tx < n; tx++ {
			row[tx] = Green(w.K, sensors[rx].Dist(sensors[tx]))
		}
	}

	return out
}

// IncidentField returns E_inc[p, tx] = (i/4)·H0(k·|s_tx − c_p|) for every
// cell centroid c_p (rows follow the order of cells).
// Complexity: O(P·N).
func IncidentField(w Wave, sensors, cells []geometry.Point) *matrix.CDense {
	out := newField(len(cells), len(sensors))
	var p, tx int
	for p = 0; p < len(cells); p++ {
		row := out.RawRowView(p)
		for tx = 0; tx < len(sensors); tx++ {
			row[tx] = Green(w.K, cells[p].Dist(sensors[tx]))
		}
	}

	return out
}

// GreenIntegral returns G[s, p] = (i·π·r/(2k))·J1(k·r)·H0(k·|s − c_p|), the
// Green's function integrated over a circular cell of radius r centred at c_p
// and observed at sensor s.
// Complexity: O(N·P).
func GreenIntegral(w Wave, radius float64, sensors, cells []geometry.Point) *matrix.CDense {
	coef := complex(0, math.Pi*radius/(2*w.K)) * complex(BesselJ1(w.K*radius), 0)
	out := newField(len(sensors), len(cells))
	var s, p int
	for s = 0; s < len(sensors); s++ {
		row := out.RawRowView(s)
		for p = 0; p < len(cells); p++ {
			row[p] = coef * Hankel0(w.K*sensors[s].Dist(cells[p]))
		}
	}

	return out
}

// PowerDBm converts a single field sample to received power:
// 10·log10(|E|²·λ²/(4π·η) / 1 mW). A zero field gives −Inf.
func PowerDBm(e complex128, wavelength float64) float64 {
	a := cmplx.Abs(e)
	p := a * a * wavelength * wavelength / (4 * math.Pi * Impedance)

	return 10 * math.Log10(p/1e-3)
}

// Power applies PowerDBm element-wise and returns a gonum matrix of the same shape.
// Complexity: O(r·c).
func Power(field *matrix.CDense, wavelength float64) *mat.Dense {
	r, c := field.Dims()
	out := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		row := field.RawRowView(i)
		for j = 0; j < c; j++ {
			out.Set(i, j, PowerDBm(row[j], wavelength))
		}
	}

	return out
}

// newField allocates a zero field; shapes come from non-empty slices so the
// dimension error of matrix.NewCDense cannot occur for valid geometry.
func newField(rows, cols int) *matrix.CDense {
	m, err := matrix.NewCDense(rows, cols)
	if err != nil {
		panic("em: empty sensor or cell set")
	}

	return m
}
