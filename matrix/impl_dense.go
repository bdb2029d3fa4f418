// SPDX-License-Identifier: MIT

// Package matrix - CDense storage (row-major, complex128) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Field matrices of the scattering pipeline ([receiver-or-cell, transmitter]),
// impedance matrices and scatterer permittivity maps are all CDense values.
//
// Complexity quicksheet:
//   - NewCDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RawRowView: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform CDense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// CDense is a concrete row-major matrix of complex128 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type CDense struct {
	r, c int          // row and column counts (> 0)
	data []complex128 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CDense)(nil)

// NewCDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewCDense(rows, cols int) (*CDense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewCDenseFrom wraps a row-major slice of length rows*cols without copying.
// The matrix takes ownership of data; later writes through data are visible.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewCDenseFrom(rows, cols int, data []complex128) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}

	return &CDense{r: rows, c: cols, data: data}, nil
}

// NewCDenseFill returns a rows×cols matrix with every entry set to v.
// Handy for vacuum scatterers (all-ones permittivity) in tests and drivers.
func NewCDenseFill(rows, cols int, v complex128) (*CDense, error) {
	m, err := NewCDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *CDense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *CDense) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call (gonum naming).
func (m *CDense) Dims() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Non-finite values are legal here: the pipeline stores singular self-link
// entries before post-processing and validates finiteness at solve time.
// Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v

	return nil
}

// RawRowView returns the backing slice of row i (no copy).
// The caller guarantees 0 ≤ i < Rows(); writes through the slice mutate m.
// Hot loops (impedance assembly, field propagation) fill rows through it.
func (m *CDense) RawRowView(i int) []complex128 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Col returns a copy of column j or ErrOutOfRange.
// Complexity: O(r).
func (m *CDense) Col(j int) ([]complex128, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxAt, 0, j, ErrOutOfRange)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines with comma-separated values, for diagnostics only.
func (m *CDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
