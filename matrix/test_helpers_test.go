// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite unless a test explicitly probes IEEE-754 behavior.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nla/matrix"
	"github.com/stretchr/testify/require"
)

// tolZero is the tolerance used by the zero-annihilation and known-value checks.
const tolZero = 1e-7

// tolOracle bounds the difference between Matmul and gonum's BLAS-backed Mul.
const tolOracle = 1e-9

// mustDense ALLOCATES an r×c zero *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewZeros(r, c)
	if err != nil {
		tb.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}

	return d
}

// denseFrom BUILDS a *Dense from literal rows or fails the test.
func denseFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return d
}

// fillDenseRand FILLS d with values in [-1,1) from math/rand seeded by seed.
// Signed values exercise cancellation, which the rng package never produces.
func fillDenseRand(tb testing.TB, d *matrix.Dense, seed int64) {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	buf := d.RawData()
	for k := range buf {
		buf[k] = r.Float64()*2 - 1
	}
}

// requireRowsInDelta ASSERTS m matches want element-wise within delta.
func requireRowsInDelta(t *testing.T, want [][]float64, m matrix.Reader, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], got, delta, "(%d,%d)", i, j)
		}
	}
}

// onesVec returns a length-n vector of ones.
func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
