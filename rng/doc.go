// SPDX-License-Identifier: MIT

// Package rng provides a small deterministic linear-congruential generator
// used to populate matrices for tests and benchmarks.
//
// What & Why:
//
//	Reproducibility is the point of this generator, not statistical quality.
//	The same seed yields the same sequence on every platform, bit-for-bit,
//	so fixtures built from it can be compared exactly across runs.
//
// Parameters (Numerical Recipes LCG):
//
//	state' = (1664525*state + 1013904223) mod 2^32
//
// Float draws:
//
//	NextFloat64 draws an exponent e = NextInt64() mod 16, then a numerator
//	n = NextInt64() mod 2^e, and returns n / 2^e. The result lies in [0,1)
//	but is NOT uniform: the exponent itself is random, so coarse dyadic
//	values (0, 0.5, 0.25, ...) are over-represented. Callers rely on the
//	exact sequence, so the construction is kept as is.
//
// Concurrency:
//
//	A *Source is not safe for concurrent use. Give each goroutine its own.
package rng
