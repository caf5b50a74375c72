// SPDX-License-Identifier: MIT

package rng

import "time"

// LCG parameters. Fixed for the lifetime of the package; changing any of
// them changes every seeded sequence.
const (
	Multiplier int64 = 1664525
	Increment  int64 = 1013904223
	Modulus    int64 = 1 << 32
)

// floatExpRange bounds the random exponent used by NextFloat64 (exp ∈ [0,16)).
const floatExpRange = 16

// Source is a deterministic linear-congruential generator.
//   - last is the current state, always in [0, m).
//   - a, c, m are the multiplier, increment and modulus.
type Source struct {
	last int64 // generator state
	a    int64 // multiplier
	c    int64 // increment
	m    int64 // modulus
}

// New returns a Source seeded with seed.
// The seed is reduced into [0, Modulus) with a Euclidean remainder, so any
// int64 is accepted and a*state never overflows int64. Seeds already in
// [0, 2^32) are used verbatim.
// Complexity: O(1).
func New(seed int64) *Source {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}

	return &Source{
		last: s,
		a:    Multiplier,
		c:    Increment,
		m:    Modulus,
	}
}

// NewTimeSeeded returns a Source seeded with the current Unix time in seconds.
// Two sources created within the same second share a sequence.
func NewTimeSeeded() *Source {
	return New(time.Now().Unix())
}

// State returns the current generator state (the last value produced,
// or the reduced seed before the first draw).
func (s *Source) State() int64 { return s.last }

// NextInt64 advances the generator one step and returns the new state.
// MAIN DESCRIPTION:
//   - Pure LCG step: last = (a*last + c) mod m.
//
// Behavior highlights:
//   - Result is always in [0, 2^32).
//   - a*last < 2^21 * 2^32 = 2^53, so the product cannot overflow.
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Source) NextInt64() int64 {
	s.last = (s.a*s.last + s.c) % s.m

	return s.last
}

// NextFloat64 returns a float64 in [0,1) built from two generator steps.
// MAIN DESCRIPTION:
//   - Draw exp = NextInt64() mod 16 and den = 2^exp.
//   - Draw num = NextInt64() mod den and return num/den.
//
// Behavior highlights:
//   - Every result is an exact dyadic rational; no rounding occurs.
//   - Distribution is skewed toward coarse values (see package doc).
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Source) NextFloat64() float64 {
	exp := s.NextInt64() % floatExpRange
	den := int64(1) << uint(exp)
	num := s.NextInt64() % den

	return float64(num) / float64(den)
}
