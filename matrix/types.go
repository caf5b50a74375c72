// SPDX-License-Identifier: MIT

// Package matrix: the indexing capability shared by Dense, View and ViewMut.
// This file contains ONLY the interfaces; implementations live in
// impl_dense.go and view.go.
package matrix

// Reader is the read half of the indexing contract.
//
// Complexity notes: all methods are O(1).
type Reader interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// AtUnchecked retrieves the element at (i, j) without validating indices.
	// Precondition (caller's responsibility): 0 <= i < Rows() && 0 <= j < Cols().
	// Violating it is outside the error model; the result is unspecified and
	// the Go runtime may panic. Reserved for hot loops whose bounds already
	// establish the precondition.
	AtUnchecked(i, j int) float64
}

// Indexable is the full {get, set, get_unchecked, set_unchecked} contract.
// It is implemented by *Dense, *View and *ViewMut. A *View implements the
// write methods only to reject them: Set returns ErrInvalidOperation and
// SetUnchecked panics.
type Indexable interface {
	Reader

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrInvalidOperation on a
	// read-only view. The error must not be ignored: a rejected write leaves
	// the element unchanged, so callers that drop it read stale values.
	Set(i, j int, v float64) error

	// SetUnchecked assigns v at (i, j) without validating indices.
	// Same precondition as AtUnchecked.
	SetUnchecked(i, j int, v float64)
}

// Compile-time assertions for interface conformance.
var (
	_ Indexable = (*Dense)(nil)
	_ Indexable = (*View)(nil)
	_ Indexable = (*ViewMut)(nil)
)
