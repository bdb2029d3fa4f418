// SPDX-License-Identifier: MIT
// Package matrix provides the complex linear-algebra kernels used by the
// Method-of-Moments solver: element-wise addition, matrix multiplication,
// and LU factorization with partial pivoting. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches or numerically singular inputs.
//
// Notes:
//   - gonum/mat covers the real-valued solves of the pipeline; it has no
//     factorization for complex matrices, which is why these kernels exist.
//   - All kernels use the central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opMul   = "Mul"
	opLU    = "LU"
	opSolve = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh CDense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over the backing slices.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *CDense) (*CDense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &CDense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks contiguous rows of B and C.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *CDense) (*CDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	res := &CDense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var (
		i, k, j int
		aik     complex128
	)
	for i = 0; i < a.r; i++ {
		cRow := res.data[i*b.c : (i+1)*b.c]
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			bRow := b.data[k*b.c : (k+1)*b.c]
			for j = 0; j < b.c; j++ {
				cRow[j] += aik * bRow[j]
			}
		}
	}

	return res, nil
}

// LU holds a partially pivoted factorization P·A = L·U of a square matrix.
// L (unit lower) and U (upper) share one packed row-major buffer.
type LU struct {
	n    int
	lu   []complex128 // packed factors, row-major
	piv  []int        // piv[i] = original row now stored at position i
	opts Options
}

// Factorize computes the Doolittle factorization with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy the data into the packed buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i,k]|, i ≥ k,
//     swap it into place, and eliminate below the pivot.
//
// Behavior highlights:
//   - Input m is read-only.
//   - Ties in the pivot search keep the lowest row index, so identical inputs
//     give bit-identical factors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrSingular when a pivot modulus is ≤ pivotTol·max|A| (or the matrix is all zeros).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The MoM impedance matrix is complex symmetric but not Hermitian, so
//     Cholesky does not apply; pivoting keeps the elimination stable when
//     self terms of weak scatterers dominate the diagonal.
func Factorize(m *CDense, opts ...Option) (*LU, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return nil, matrixErrorf(opLU, err)
		}
	}

	n := m.r
	f := &LU{n: n, lu: make([]complex128, n*n), piv: make([]int, n), opts: o}
	copy(f.lu, m.data)
	for i := range f.piv {
		f.piv[i] = i
	}

	floor := o.pivotTol * maxAbs(m.data)
	var (
		i, j, k, p int
		best, mag  float64
		pivot, l   complex128
	)
	for k = 0; k < n; k++ {
		// Pivot search over column k, rows k..n-1.
		p, best = k, cmplx.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = cmplx.Abs(f.lu[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best == 0 || best <= floor {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d (|u|=%g): %w", k, best, ErrSingular))
		}
		if p != k {
			rk, rp := f.lu[k*n:(k+1)*n], f.lu[p*n:(p+1)*n]
			for j = 0; j < n; j++ {
				rk[j], rp[j] = rp[j], rk[j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
		}

		// Eliminate below the pivot; multipliers are stored in place of the zeros.
		pivot = f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			l = f.lu[i*n+k] / pivot
			f.lu[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= l * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Size returns n for an n×n factorization.
func (f *LU) Size() int { return f.n }

// Solve returns X with A·X = B for every column of b.
// Implementation:
//   - Stage 1: Validate b is non-nil with n rows.
//   - Stage 2: For each right-hand side: permute, forward solve with unit L,
//     backward solve with U.
//   - Stage 3: Under the default numeric policy, reject non-finite results.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n^2 · cols(b)), Space O(n · cols(b)).
func (f *LU) Solve(b *CDense) (*CDense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.r != f.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	n, nrhs := f.n, b.c
	x := &CDense{r: n, c: nrhs, data: make([]complex128, n*nrhs)}
	y := make([]complex128, n) // per-column workspace
	var (
		col, i, k int
		sum       complex128
	)
	for col = 0; col < nrhs; col++ {
		// Forward substitution on the permuted right-hand side: L*y = P*b.
		for i = 0; i < n; i++ {
			sum = b.data[f.piv[i]*nrhs+col]
			for k = 0; k < i; k++ {
				sum -= f.lu[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= f.lu[i*n+k] * y[k]
			}
			y[i] = sum / f.lu[i*n+i]
		}
		for i = 0; i < n; i++ {
			x.data[i*nrhs+col] = y[i]
		}
	}

	if f.opts.validateNaNInf {
		if err := ValidateFinite(x); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	return x, nil
}

// Solve factorizes a and solves A·X = B in one call.
// Prefer Factorize + (*LU).Solve when several right-hand side batches share a.
func Solve(a, b *CDense, opts ...Option) (*CDense, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
