// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mwtomo/matrix"
)

// diagDominant builds an n×n complex matrix with a dominant diagonal.
func diagDominant(b *testing.B, n int) *matrix.CDense {
	b.Helper()
	m, err := matrix.NewCDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		row := m.RawRowView(i)
		for j = 0; j < n; j++ {
			row[j] = complex(1/float64(1+i+j), 0.5/float64(1+(i*j)%7))
		}
		row[i] += complex(float64(n), 1)
	}

	return m
}

func BenchmarkFactorize(b *testing.B) {
	for _, n := range []int{64, 256} {
		a := diagDominant(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for k := 0; k < b.N; k++ {
				if _, err := matrix.Factorize(a); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLUSolve_MultiRHS(b *testing.B) {
	const n, rhs = 256, 32
	a := diagDominant(b, n)
	f, err := matrix.Factorize(a)
	if err != nil {
		b.Fatal(err)
	}
	rhsM, err := matrix.NewCDenseFill(n, rhs, 1-1i)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for k := 0; k < b.N; k++ {
		if _, err = f.Solve(rhsM); err != nil {
			b.Fatal(err)
		}
	}
}
