// SPDX-License-Identifier: MIT

// Package bench is a small micro-benchmark harness.
//
// What & Why:
//
//	Run times a critical section over Warmup+Trials iterations. Each
//	iteration first builds fresh arguments with an untimed startup closure,
//	then times the critical closure on them. The first Warmup timings are
//	discarded so cold-start effects (page faults, cache warm-up) settle; the
//	result is the mean over exactly Trials measured iterations.
//
// Determinism:
//
//	Options.Clock is injectable, so tests can drive the harness with a fake
//	clock and assert the exact mean.
//
// Concurrency:
//
//	Everything runs on the calling goroutine; the harness holds no state
//	between calls.
package bench
