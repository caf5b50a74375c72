// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison.

package matrix

import "math"

// AllClose reports whether |a[i,j]-b[i,j]| <= atol for every element.
// NaN never compares close; +Inf equals +Inf and -Inf equals -Inf.
// Returns ErrNilMatrix or ErrDimensionMismatch (wrapped) on bad operands.
// Time: O(r*c). Space: O(1). Deterministic i→j scan, stops at first miss.
//
// AI-Hints: the tolerance 1e-7 matches the zero-annihilation checks in tests.
func AllClose(a, b Reader, atol float64) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	atol = math.Abs(atol)

	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, bv = a.AtUnchecked(i, j), b.AtUnchecked(i, j)
			if av == bv { // covers equal infinities
				continue
			}
			if math.IsNaN(av) || math.IsNaN(bv) || !(math.Abs(av-bv) <= atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
