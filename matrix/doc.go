// Package matrix offers a dense row-major matrix, zero-copy row views and
// the multiplication kernels that run on them.
//
// The matrix package provides:
//
//   - Dense: owns a contiguous row-major []float64 (entry (i,j) at i*cols+j),
//     built by NewZeros, NewRand (deterministic rng fill) or NewFromSlice
//     (adopts the caller's buffer).
//   - View / ViewMut: read-only and mutable row views that alias a Dense's
//     buffer without copying. ViewMut rows are pairwise disjoint.
//   - Indexable: the shared {At, Set, AtUnchecked, SetUnchecked} contract
//     implemented by all three types.
//   - Matmul (views, i-k-j order) and MatVecMul (owned matrix × vector).
//
// Checked accessors return ErrOutOfRange; unchecked accessors trust the
// caller's bounds and exist for hot loops. Writes through a View fail with
// ErrInvalidOperation (Set) or panic (SetUnchecked).
//
// Go has no borrow checker: a view must not outlive its owner, and a
// ViewMut must be the only live view over its rows. Nothing locks; there is
// no concurrency in this package to arbitrate.
//
// See the examples in this package for usage patterns.
package matrix
