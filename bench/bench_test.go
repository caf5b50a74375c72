// Package bench_test validates iteration accounting and averaging.
package bench_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/nla/bench"
	"github.com/stretchr/testify/require"
)

// stepClock advances by the next scripted duration on every second call, so
// the i-th critical section appears to take durs[i].
type stepClock struct {
	now   time.Time
	durs  []time.Duration
	calls int
}

func (c *stepClock) Now() time.Time {
	if c.calls%2 == 1 { // end of a timed section
		c.now = c.now.Add(c.durs[c.calls/2])
	}
	c.calls++

	return c.now
}

// TestMeasure_IterationCount checks 3 warmup + 5 trials ⇒ 8 calls, mean of the last 5.
func TestMeasure_IterationCount(t *testing.T) {
	clk := &stepClock{
		now: time.Unix(0, 0),
		durs: []time.Duration{
			100 * time.Second, 100 * time.Second, 100 * time.Second, // warmup, discarded
			1 * time.Second, 2 * time.Second, 3 * time.Second, 4 * time.Second, 5 * time.Second,
		},
	}
	opts := bench.Options{Warmup: 3, Trials: 5, Clock: clk.Now}

	var startups, criticals int
	var order []string
	res, err := bench.Measure(opts,
		func() int {
			startups++
			order = append(order, "s")
			return startups
		},
		func(arg int) {
			criticals++
			order = append(order, "c")
			require.Equal(t, startups, arg) // fresh args from the preceding startup
		},
	)
	require.NoError(t, err)
	require.Equal(t, 8, startups)
	require.Equal(t, 8, criticals)
	require.Equal(t, []string{"s", "c", "s", "c", "s", "c", "s", "c", "s", "c", "s", "c", "s", "c", "s", "c"}, order)

	require.Len(t, res.Samples, 5)
	require.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second, 4 * time.Second, 5 * time.Second}, res.Samples)
	require.Equal(t, 3*time.Second, res.Mean)
	require.Equal(t, 1*time.Second, res.Min)
	require.Equal(t, 5*time.Second, res.Max)
	require.Equal(t, 15*time.Second, res.Total)
	require.InDelta(t, 3.0, res.Seconds(), 1e-12)
}

// TestRun_MeanSeconds checks Run returns the mean in seconds.
func TestRun_MeanSeconds(t *testing.T) {
	clk := &stepClock{
		now:  time.Unix(0, 0),
		durs: []time.Duration{time.Hour, 250 * time.Millisecond, 750 * time.Millisecond},
	}
	secs, err := bench.Run(bench.Options{Warmup: 1, Trials: 2, Clock: clk.Now},
		func() struct{} { return struct{}{} },
		func(struct{}) {},
	)
	require.NoError(t, err)
	require.InDelta(t, 0.5, secs, 1e-12)
}

// TestRun_NoWarmup checks Warmup=0 measures every iteration.
func TestRun_NoWarmup(t *testing.T) {
	var calls int
	res, err := bench.Measure(bench.Options{Warmup: 0, Trials: 4},
		func() int { return 0 },
		func(int) { calls++ },
	)
	require.NoError(t, err)
	require.Equal(t, 4, calls)
	require.Len(t, res.Samples, 4)
	require.GreaterOrEqual(t, res.Max, res.Min)
}

// TestMeasure_InvalidOptions checks option validation.
func TestMeasure_InvalidOptions(t *testing.T) {
	start := func() int { return 0 }
	crit := func(int) {}

	_, err := bench.Run(bench.Options{Warmup: -1, Trials: 1}, start, crit)
	require.ErrorIs(t, err, bench.ErrInvalidOptions)

	_, err = bench.Run(bench.Options{Warmup: 0, Trials: 0}, start, crit)
	require.ErrorIs(t, err, bench.ErrInvalidOptions)

	_, err = bench.Run(bench.DefaultOptions(), nil, crit)
	require.ErrorIs(t, err, bench.ErrInvalidOptions)

	_, err = bench.Run[int](bench.DefaultOptions(), start, nil)
	require.ErrorIs(t, err, bench.ErrInvalidOptions)
}

func TestDefaultOptions(t *testing.T) {
	o := bench.DefaultOptions()
	require.Equal(t, bench.DefaultWarmup, o.Warmup)
	require.Equal(t, bench.DefaultTrials, o.Trials)
	require.Nil(t, o.Clock)
}
