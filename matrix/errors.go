// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is.
// Panics are reserved for programmer errors on paths that have no error
// return (SetUnchecked on a read-only View).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape -> dimension mismatch -> index -> read-only violation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Checked indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a backing slice whose length is not rows*cols, or Matmul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidOperation indicates a write through a read-only View.
	ErrInvalidOperation = errors.New("matrix: write to read-only view")

	// ErrNilMatrix indicates that a nil matrix or view was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil operand")
)

// Method tags used in error wrappers.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxSubRows  = "SubRows"
	ctxSplit    = "SplitRows"
	ctxSetUnchk = "SetUnchecked"
)

// Type tags used in error wrappers.
const (
	tagDense   = "Dense"
	tagView    = "View"
	tagViewMut = "ViewMut"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return indexErrorf(tagDense, method, row, col, err)
}

// indexErrorf formats "<Type>.<method>(row,col): %w" for any indexable type.
func indexErrorf(typ, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", typ, method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, keeping it reachable via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
