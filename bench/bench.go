// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"
)

// validate checks opts and the closures; it returns a wrapped ErrInvalidOptions.
func validate(opts Options, haveStartup, haveCritical bool) error {
	if opts.Warmup < 0 {
		return fmt.Errorf("bench: Warmup=%d: %w", opts.Warmup, ErrInvalidOptions)
	}
	if opts.Trials < 1 {
		return fmt.Errorf("bench: Trials=%d: %w", opts.Trials, ErrInvalidOptions)
	}
	if !haveStartup || !haveCritical {
		return fmt.Errorf("bench: nil closure: %w", ErrInvalidOptions)
	}

	return nil
}

// Measure runs Warmup+Trials iterations and returns the measured timings.
// MAIN DESCRIPTION:
//   - Each iteration: args := startup() (untimed), then time critical(args).
//   - The first Warmup timings are discarded.
//
// Behavior highlights:
//   - startup and critical are each called exactly Warmup+Trials times, in
//     alternating order.
//   - A sample-count mismatch after the loop is an internal bug and panics.
//
// Errors:
//   - ErrInvalidOptions for Warmup<0, Trials<1 or nil closures.
//
// Complexity:
//   - Time O(Warmup+Trials) closure calls, Space O(Trials).
func Measure[A any](opts Options, startup func() A, critical func(A)) (Result, error) {
	if err := validate(opts, startup != nil, critical != nil); err != nil {
		return Result{}, err
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	var (
		res     = Result{Samples: make([]time.Duration, 0, opts.Trials)}
		total   = opts.Warmup + opts.Trials
		i       int
		args    A
		start   time.Time
		elapsed time.Duration
	)
	for i = 0; i < total; i++ {
		args = startup()

		start = now()
		critical(args)
		elapsed = now().Sub(start)

		if i < opts.Warmup {
			continue
		}
		if len(res.Samples) == 0 || elapsed < res.Min {
			res.Min = elapsed
		}
		if elapsed > res.Max {
			res.Max = elapsed
		}
		res.Total += elapsed
		res.Samples = append(res.Samples, elapsed)
	}
	if len(res.Samples) != opts.Trials {
		panic(fmt.Sprintf("bench: measured %d trials, want %d", len(res.Samples), opts.Trials))
	}
	res.Mean = res.Total / time.Duration(opts.Trials)

	return res, nil
}

// Run is Measure reduced to the mean wall-clock seconds per measured trial.
func Run[A any](opts Options, startup func() A, critical func(A)) (float64, error) {
	res, err := Measure(opts, startup, critical)
	if err != nil {
		return 0, err
	}

	return res.Seconds(), nil
}
