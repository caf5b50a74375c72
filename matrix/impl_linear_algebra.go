// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernels over views and matrices.
// All functions perform strict fail-fast validation before the first write
// and return wrapped sentinels on dimension mismatches.
//
// Numeric policy:
//   - Accumulation is float64 throughout.
//   - Loop orders are fixed and documented; floating-point addition is not
//     associative, so the order is part of the result.
//   - Each product is rounded to float64 before it is added. Go permits fusing
//     x*y+z into one FMA; an explicit float64() conversion forbids it, which
//     keeps results identical across amd64, arm64 and others.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatmul    = "Matmul"
	opMulInto   = "MulInto"
	opMatVecMul = "MatVecMul"
	opAxpy      = "Axpy"
)

// Matmul computes C = A × B over row views, writing into c.
// MAIN DESCRIPTION:
//   - Dense triple loop on borrowed row slices; no allocation.
//
// Implementation:
//   - Stage 1: validate non-nil operands and shapes (a.Rows==c.Rows,
//     a.Cols==b.Rows, b.Cols==c.Cols). Nothing is written on failure.
//   - Stage 2: zero every entry of c.
//   - Stage 3: i→k→j accumulation c[i][j] += a[i][k]*b[k][j].
//
// Behavior highlights:
//   - i-k-j order keeps a[i][k] invariant across the inner loop and walks
//     rows b[k] and c[i] contiguously.
//   - No zero skipping: every (i,k,j) triple contributes, so 0*Inf yields NaN
//     as IEEE-754 requires.
//
// Inputs:
//   - a: m×n read view; b: n×p read view; c: m×p mutable view.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMatmul).
//
// Determinism:
//   - Fixed loop order and per-step rounding ⇒ bit-identical results everywhere.
//
// Complexity:
//   - Time O(m*n*p), Space O(1).
//
// Notes:
//   - c must not share rows with a or b; aliasing is the caller's contract.
func Matmul(a, b *View, c *ViewMut) error {
	if a == nil || b == nil || c == nil {
		return matrixErrorf(opMatmul, ErrNilMatrix)
	}
	if err := ValidateMulShapes(a, b, c); err != nil {
		return matrixErrorf(opMatmul, err)
	}

	var (
		i, k, j    int
		aik        float64
		aRow, bRow []float64
		cRow       []float64
	)
	// Pass 1: zero the output; loop bounds establish every index.
	for i = 0; i < c.r; i++ {
		for j = 0; j < c.c; j++ {
			c.SetUnchecked(i, j, ZeroSum)
		}
	}

	// Pass 2: accumulate in i→k→j order.
	for i = 0; i < a.r; i++ {
		aRow = a.rows[i]
		cRow = c.rows[i]
		for k = 0; k < a.c; k++ {
			aik = aRow[k]
			bRow = b.rows[k]
			for j = 0; j < b.c; j++ {
				cRow[j] += float64(aik * bRow[j]) // conversion forbids FMA fusion
			}
		}
	}

	return nil
}

// MulInto computes C = A × B through the Reader/Indexable interfaces.
// It follows exactly the passes and loop order of Matmul, so for the same
// operands the results are bit-identical; use it when the operands are not
// row views (e.g. a *Dense on one side).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMulInto);
// ErrInvalidOperation when c is a read-only *View (checked before any write).
// Complexity: Time O(m*n*p), Space O(1).
func MulInto(a, b Reader, c Indexable) error {
	if err := ValidateNotNil(a, b, c); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if err := ValidateMulShapes(a, b, c); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	if _, ro := c.(*View); ro {
		return matrixErrorf(opMulInto, fmt.Errorf("output: %w", ErrInvalidOperation))
	}

	m, n, p := a.Rows(), a.Cols(), b.Cols()
	var (
		i, k, j int
		aik     float64
	)
	for i = 0; i < m; i++ {
		for j = 0; j < p; j++ {
			c.SetUnchecked(i, j, ZeroSum)
		}
	}
	for i = 0; i < m; i++ {
		for k = 0; k < n; k++ {
			aik = a.AtUnchecked(i, k)
			for j = 0; j < p; j++ {
				c.SetUnchecked(i, j, c.AtUnchecked(i, j)+float64(aik*b.AtUnchecked(k, j)))
			}
		}
	}

	return nil
}

// MatVecMul computes u = A·v.
// MAIN DESCRIPTION:
//   - One dot product per row; u[i] is zeroed, then accumulated for j = 0..cols-1.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrDimensionMismatch when len(v) != a.Cols() or len(u) != a.Rows();
//     u is untouched on error.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - u must not alias v.
func MatVecMul(a *Dense, v, u []float64) error {
	if a == nil {
		return matrixErrorf(opMatVecMul, ErrNilMatrix)
	}
	if err := ValidateVecLen(v, a.c); err != nil {
		return matrixErrorf(opMatVecMul, fmt.Errorf("v: %w", err))
	}
	if err := ValidateVecLen(u, a.r); err != nil {
		return matrixErrorf(opMatVecMul, fmt.Errorf("u: %w", err))
	}

	var i, j, base int
	for i = 0; i < a.r; i++ {
		u[i] = ZeroSum
		base = i * a.c
		for j = 0; j < a.c; j++ {
			u[i] += float64(a.data[base+j] * v[j])
		}
	}

	return nil
}

// Axpy computes y = alpha*x + y in place, element by element in index order.
// Each product is rounded before the addition, as in Matmul.
//
// Errors: ErrDimensionMismatch when len(x) != len(y); y is untouched on error.
// Complexity: Time O(n), Space O(1).
func Axpy(alpha float64, x, y []float64) error {
	if err := ValidateVecLen(x, len(y)); err != nil {
		return matrixErrorf(opAxpy, err)
	}

	var i int
	for i = 0; i < len(y); i++ {
		y[i] += float64(alpha * x[i])
	}

	return nil
}
