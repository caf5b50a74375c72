// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the checked surface: At/Set return errors instead of panicking.
//   - Offer an unchecked surface (AtUnchecked/SetUnchecked) for hot loops.
//   - Hand out zero-copy row views (View, ViewMut) partitioned in a single pass.
//
// AI-Hints:
//   - Build operands once, then derive views; views never allocate element storage.
//   - NewFromSlice adopts the caller's buffer: do not keep writing to it afterwards.
//
// Complexity quicksheet:
//   - NewZeros/NewRand: O(r*c); NewFromSlice: O(1); At/Set: O(1);
//     Clone: O(r*c); View/ViewMut: O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewZeros creates an r×c matrix with every entry 0.0.
// MAIN DESCRIPTION:
//   - Validate shape, then allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Zero-area shapes (0×n, n×0) are legal and allocate an empty buffer.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewRand creates an r×c matrix filled from an rng.Source.
// MAIN DESCRIPTION:
//   - Every entry is one NextFloat64() draw, taken in row-major order.
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: resolve options (WithSeed / WithSource; default seed DefaultSeed).
//   - Stage 3: draw exactly rows*cols values into the flat buffer.
//
// Behavior highlights:
//   - Deterministic: same options ⇒ same matrix.
//   - Values lie in [0,1) but follow the generator's skewed distribution.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRand(rows, cols int, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	buf := make([]float64, rows*cols)
	var k int
	for k = 0; k < len(buf); k++ { // flat walk == row-major order
		buf[k] = o.src.NextFloat64()
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewFromSlice wraps data as an r×c matrix without copying.
// MAIN DESCRIPTION:
//   - Ownership of data transfers to the returned Dense.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The caller must not keep writing to data; the matrix and its views see every write.
func NewFromSlice(rows, cols int, data []float64) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromSlice(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows copies a rectangular [][]float64 into a new Dense.
// Returns ErrDimensionMismatch for ragged input. An empty input yields 0×0.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	buf := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData exposes the row-major backing buffer (no copy).
// Writes through the returned slice are visible to the matrix and all views.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// AtUnchecked returns the value at (row, col) without validating indices.
// Precondition: 0 <= row < Rows() && 0 <= col < Cols().
func (m *Dense) AtUnchecked(row, col int) float64 { return m.data[row*m.c+col] }

// SetUnchecked stores v at (row, col) without validating indices.
// Precondition: 0 <= row < Rows() && 0 <= col < Cols().
func (m *Dense) SetUnchecked(row, col int, v float64) { m.data[row*m.c+col] = v }

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders one bracketed line per row, values formatted with %g.
// Intended for debugging; not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// partitionRows splits data into r row slices of length c in one pass.
// Each slice uses a full slice expression so its capacity ends at its own
// row; append on a row reallocates instead of overwriting the next row.
// Complexity: O(r) time, O(r) space for the slice headers.
func partitionRows(data []float64, r, c int) [][]float64 {
	rows := make([][]float64, r)
	var i, off int
	for i = 0; i < r; i++ {
		off = i * c
		rows[i] = data[off : off+c : off+c]
	}

	return rows
}

// View returns a read-only view over all rows of m.
// MAIN DESCRIPTION:
//   - Zero-copy: row i aliases RawData()[i*c : i*c+c].
//
// Notes:
//   - The view must not be held while a ViewMut of the same matrix is live,
//     and must not be used after the matrix's buffer is replaced.
//
// Complexity:
//   - Time O(r), Space O(r) slice headers; no element copies.
func (m *Dense) View() *View {
	return &View{r: m.r, c: m.c, rows: partitionRows(m.data, m.r, m.c)}
}

// ViewMut returns a mutable view over all rows of m.
// MAIN DESCRIPTION:
//   - Zero-copy: row i aliases RawData()[i*c : i*c+c]; rows are pairwise disjoint.
//
// Notes:
//   - Exclusive access: while the ViewMut is live, no other view of m may be
//     used. The contract is the caller's; nothing here locks.
//
// Complexity:
//   - Time O(r), Space O(r) slice headers; no element copies.
func (m *Dense) ViewMut() *ViewMut {
	return &ViewMut{r: m.r, c: m.c, rows: partitionRows(m.data, m.r, m.c)}
}
