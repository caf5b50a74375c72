// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random-fill factory.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no hidden time-based seeding.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "github.com/katalvlaran/nla/rng"

// ---------- Defaults (single source of truth) ----------

// DefaultSeed seeds the generator used by NewRand when no source is given.
// Two NewRand calls with default options therefore produce identical matrices.
const DefaultSeed int64 = 1

// Option mutates the internal options of a factory call.
type Option func(*options)

// options is the resolved configuration. Fields are unexported; public APIs
// consume ...Option.
type options struct {
	seed int64       // used only when src == nil
	src  *rng.Source // explicit generator; takes precedence over seed
}

// WithSeed makes NewRand draw from a fresh rng.New(seed).
// Last writer wins against WithSource.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.src = nil
	}
}

// WithSource makes NewRand draw from src, advancing its state by
// exactly 2*rows*cols steps (two per NextFloat64).
//
// Panics if src is nil: passing a nil generator is a programmer error.
func WithSource(src *rng.Source) Option {
	if src == nil {
		panic("matrix: WithSource(nil)")
	}

	return func(o *options) {
		o.src = src
	}
}

// gatherOptions applies setters on top of defaults (last-writer-wins) and
// materializes the generator.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) options {
	o := options{seed: DefaultSeed}
	for _, set := range user {
		set(&o)
	}
	if o.src == nil {
		o.src = rng.New(o.seed)
	}

	return o
}
