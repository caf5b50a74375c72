// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"time"
)

// ErrInvalidOptions is returned for negative Warmup, Trials < 1, or nil closures.
var ErrInvalidOptions = errors.New("bench: invalid options")

// Defaults used by DefaultOptions.
const (
	DefaultWarmup = 3
	DefaultTrials = 10
)

// Options configures a measurement.
type Options struct {
	// Warmup is the number of leading iterations whose timings are discarded (>= 0).
	Warmup int

	// Trials is the number of measured iterations (>= 1).
	Trials int

	// Clock returns the current time. nil means time.Now.
	Clock func() time.Time
}

// DefaultOptions returns Options{Warmup: DefaultWarmup, Trials: DefaultTrials}.
func DefaultOptions() Options {
	return Options{Warmup: DefaultWarmup, Trials: DefaultTrials}
}

// Result holds the measured trial timings.
type Result struct {
	Samples []time.Duration // one entry per measured trial, in run order
	Mean    time.Duration   // Total / len(Samples), truncated to the nanosecond
	Min     time.Duration
	Max     time.Duration
	Total   time.Duration // sum of Samples
}

// Seconds returns the mean trial time in seconds, computed from Total so no
// precision is lost to the truncated Mean.
func (r Result) Seconds() float64 {
	if len(r.Samples) == 0 {
		return 0
	}

	return r.Total.Seconds() / float64(len(r.Samples))
}
