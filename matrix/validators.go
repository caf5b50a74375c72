// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep kernels minimal by delegating nil/shape/length checks here.
//   - Return sentinels wrapped only with the validator tag so call sites can
//     add their own operation tag uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether r is nil, including typed-nil pointers stored in the
// interface (e.g. (*Dense)(nil) passed as Reader).
func isNil(r Reader) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateNotNil ensures every operand is non-nil.
//
// Returns ErrNilMatrix on the first nil operand.
// Complexity: O(k).
func ValidateNotNil(ms ...Reader) error {
	for i, m := range ms {
		if isNil(m) {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil: operand %d", i), ErrNilMatrix)
		}
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative and that rows*cols
// fits in an int, so len(data) == rows*cols can hold.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d): size overflows int", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateMulShapes checks the three multiply preconditions:
//
//	a.Rows == c.Rows, a.Cols == b.Rows, b.Cols == c.Cols.
//
// Assumes operands are non-nil (caller must ensure).
// Errors: ErrDimensionMismatch naming the violated pair.
// Complexity: O(1).
func ValidateMulShapes(a, b, c Reader) error {
	if a.Rows() != c.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulShapes: a.Rows=%d c.Rows=%d", a.Rows(), c.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulShapes: a.Cols=%d b.Rows=%d", a.Cols(), b.Rows()), ErrDimensionMismatch)
	}
	if b.Cols() != c.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateMulShapes: b.Cols=%d c.Cols=%d", b.Cols(), c.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is accepted when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d want=%d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes operands are non-nil.
// Complexity: O(1).
func ValidateSameShape(a, b Reader) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
