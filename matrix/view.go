// SPDX-License-Identifier: MIT

// Package matrix - non-owning row views over a Dense buffer.
//
// Purpose:
//   - View grants read access, ViewMut grants write access, both through
//     per-row slices that alias the owner's row-major storage.
//   - Rows of a ViewMut are pairwise disjoint by construction (single
//     partitioning pass, capacity-clipped slices). SplitRows keeps that
//     property when handing out sub-views.
//
// Aliasing contract (no runtime locks; there is no concurrency to arbitrate):
//   - A view must not outlive its owner's buffer.
//   - While a ViewMut is live, no other view over the same rows may be used.
//   - The unchecked accessors trust the caller's bounds.

package matrix

import "fmt"

// View is a read-only window over r consecutive rows of a matrix.
type View struct {
	r, c int         // view height and width
	rows [][]float64 // borrowed row slices, len(rows) == r, len(rows[i]) == c
}

// ViewMut is a mutable window over r consecutive rows of a matrix.
type ViewMut struct {
	r, c int         // view height and width
	rows [][]float64 // borrowed, pairwise disjoint row slices
}

// ---------- View ----------

// Rows returns the number of rows in the view.
func (v *View) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View) Cols() int { return v.c }

// At reads element (i,j) or returns ErrOutOfRange.
// Complexity: O(1).
func (v *View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, indexErrorf(tagView, ctxAt, i, j, ErrOutOfRange)
	}

	return v.rows[i][j], nil
}

// AtUnchecked reads element (i,j) without validating indices.
// Precondition: 0 <= i < Rows() && 0 <= j < Cols().
func (v *View) AtUnchecked(i, j int) float64 { return v.rows[i][j] }

// Set always fails: a View is read-only.
// Bounds are reported first so a bad index is never masked; otherwise the
// result is ErrInvalidOperation. No memory is written in either case.
func (v *View) Set(i, j int, _ float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return indexErrorf(tagView, ctxSet, i, j, ErrOutOfRange)
	}

	return indexErrorf(tagView, ctxSet, i, j, ErrInvalidOperation)
}

// SetUnchecked panics with an error wrapping ErrInvalidOperation.
// Writing through a read-only view is a programmer error and the unchecked
// path has no error return to report it on.
func (v *View) SetUnchecked(i, j int, _ float64) {
	panic(indexErrorf(tagView, ctxSetUnchk, i, j, ErrInvalidOperation))
}

// Row returns row i as a slice. The slice aliases the owner's storage and
// must be treated as read-only.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (v *View) Row(i int) ([]float64, error) {
	if i < 0 || i >= v.r {
		return nil, fmt.Errorf("%s.%s(%d): %w", tagView, ctxRow, i, ErrOutOfRange)
	}

	return v.rows[i], nil
}

// SubRows returns a read-only view over rows [lo, hi).
// Errors: ErrOutOfRange unless 0 <= lo <= hi <= Rows().
// Complexity: O(1); the row table is re-sliced, not copied.
func (v *View) SubRows(lo, hi int) (*View, error) {
	if lo < 0 || hi < lo || hi > v.r {
		return nil, fmt.Errorf("%s.%s(%d,%d): %w", tagView, ctxSubRows, lo, hi, ErrOutOfRange)
	}

	return &View{r: hi - lo, c: v.c, rows: v.rows[lo:hi:hi]}, nil
}

// ---------- ViewMut ----------

// Rows returns the number of rows in the view.
func (v *ViewMut) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *ViewMut) Cols() int { return v.c }

// At reads element (i,j) or returns ErrOutOfRange.
// Complexity: O(1).
func (v *ViewMut) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, indexErrorf(tagViewMut, ctxAt, i, j, ErrOutOfRange)
	}

	return v.rows[i][j], nil
}

// Set writes element (i,j) through to the owner's storage.
// Errors: ErrOutOfRange on invalid indices (nothing is written).
// Complexity: O(1).
func (v *ViewMut) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return indexErrorf(tagViewMut, ctxSet, i, j, ErrOutOfRange)
	}
	v.rows[i][j] = val

	return nil
}

// AtUnchecked reads element (i,j) without validating indices.
// Precondition: 0 <= i < Rows() && 0 <= j < Cols().
func (v *ViewMut) AtUnchecked(i, j int) float64 { return v.rows[i][j] }

// SetUnchecked writes element (i,j) without validating indices.
// Precondition: 0 <= i < Rows() && 0 <= j < Cols().
func (v *ViewMut) SetUnchecked(i, j int, val float64) { v.rows[i][j] = val }

// Row returns row i as a writable slice aliasing the owner's storage.
// Its capacity ends at the row boundary.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (v *ViewMut) Row(i int) ([]float64, error) {
	if i < 0 || i >= v.r {
		return nil, fmt.Errorf("%s.%s(%d): %w", tagViewMut, ctxRow, i, ErrOutOfRange)
	}

	return v.rows[i], nil
}

// SplitRows splits v into two mutable views over rows [0, at) and [at, Rows()).
// MAIN DESCRIPTION:
//   - The halves share no row, so each can be written independently.
//
// Behavior highlights:
//   - Both row tables are capacity-clipped; neither half can reach the other's rows.
//   - v itself must not be used while the halves are live.
//
// Errors:
//   - ErrOutOfRange unless 0 <= at <= Rows().
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *ViewMut) SplitRows(at int) (*ViewMut, *ViewMut, error) {
	if at < 0 || at > v.r {
		return nil, nil, fmt.Errorf("%s.%s(%d): %w", tagViewMut, ctxSplit, at, ErrOutOfRange)
	}
	top := &ViewMut{r: at, c: v.c, rows: v.rows[:at:at]}
	bottom := &ViewMut{r: v.r - at, c: v.c, rows: v.rows[at:v.r:v.r]}

	return top, bottom, nil
}

// Fill sets every element of the view to x.
// Complexity: O(r*c).
func (v *ViewMut) Fill(x float64) {
	var i, j int
	var row []float64
	for i = 0; i < v.r; i++ {
		row = v.rows[i]
		for j = 0; j < v.c; j++ {
			row[j] = x
		}
	}
}
