// SPDX-License-Identifier: MIT
package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mwtomo/matrix"
)

// Index returns the column-major flat index of (row, col) in a matrix with
// the given number of rows.
func Index(row, col, rows int) int { return col*rows + row }

// Slot returns the row of receiver rx in the compact (self links removed)
// column of transmitter tx: receivers keep ascending order with tx skipped.
// rx must differ from tx.
func Slot(rx, tx int) int {
	if rx < tx {
		return rx
	}

	return rx - 1
}

// Flatten returns the entries of m in column-major order.
func Flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, r*c)
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			out[Index(i, j, r)] = m.At(i, j)
		}
	}

	return out
}

// Reshape is the inverse of Flatten: it lays v out column-major into a new
// rows×cols matrix. It returns matrix.ErrDimensionMismatch when
// len(v) != rows·cols.
func Reshape(v []float64, rows, cols int) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("geometry: Reshape(%d,%d): %w", rows, cols, matrix.ErrInvalidDimensions)
	}
	if len(v) != rows*cols {
		return nil, fmt.Errorf("geometry: Reshape %d values into %dx%d: %w",
			len(v), rows, cols, matrix.ErrDimensionMismatch)
	}
	out := mat.NewDense(rows, cols, nil)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			out.Set(i, j, v[Index(i, j, rows)])
		}
	}

	return out, nil
}

// FlattenComplex returns the entries of m in column-major order.
func FlattenComplex(m *matrix.CDense) []complex128 {
	r, c := m.Dims()
	out := make([]complex128, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		row := m.RawRowView(i)
		for j = 0; j < c; j++ {
			out[Index(i, j, r)] = row[j]
		}
	}

	return out
}
