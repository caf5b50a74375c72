// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.
//
// Purpose:
//   - Hand a Dense to gonum routines without copying (shared row-major buffer).
//   - Import any gonum mat.Matrix into a Dense (copy).

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum wraps m's buffer in a *mat.Dense. Writes through either side are
// visible to the other. Returns nil for zero-area matrices, which gonum
// cannot represent.
// Complexity: O(1).
func ToGonum(m *Dense) *mat.Dense {
	if m == nil || m.r == 0 || m.c == 0 {
		return nil
	}

	return mat.NewDense(m.r, m.c, m.data)
}

// FromGonum copies any gonum matrix into a new Dense in row-major order.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	buf := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = g.At(i, j)
		}
	}

	return &Dense{r: r, c: c, data: buf}
}
