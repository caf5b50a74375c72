// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide allocate-and-compute entry points over the in-place kernels.
//   - Avoid logic duplication; each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c).
func ZerosLike(m Reader) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Rows(), m.Cols())
}

// Product allocates C = A × B by running Matmul on fresh views.
// Complexity: O(m*n*p).
//
// AI-Hints: For repeated products of the same shape, keep C and call Matmul directly.
func Product(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("Product", ErrNilMatrix)
	}
	// Output shape is derived from the operands, so only the inner pair can disagree.
	c, err := NewZeros(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf("Product", err)
	}
	if err = Matmul(a.View(), b.View(), c.ViewMut()); err != nil {
		return nil, err
	}

	return c, nil
}

// MatVec allocates u = A·v by running MatVecMul.
// Complexity: O(r*c).
func MatVec(a *Dense, v []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf("MatVec", ErrNilMatrix)
	}
	u := make([]float64, a.r)
	if err := MatVecMul(a, v, u); err != nil {
		return nil, err
	}

	return u, nil
}
