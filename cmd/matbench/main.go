// SPDX-License-Identifier: MIT

// Command matbench times the matrix kernels with the bench harness.
//
// Usage:
//
//	matbench -op matmul -size 256
//	matbench -op all -rows 512 -inner 64 -cols 128 -warmup 5 -trials 20
//	matbench -cpu                                  # also print SIMD feature flags
//
// Every trial multiplies freshly generated operands (seeded, so runs are
// comparable). The report prints the mean seconds per trial and the
// resulting GFLOP/s.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/nla/bench"
	"github.com/katalvlaran/nla/matrix"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config is the parsed command line.
type config struct {
	op                string
	rows, inner, cols int
	opts              bench.Options
	seed              int64
	cpu               bool
}

// parseFlags turns args into a config. Dimension flags left at 0 fall back to -size.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("matbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg  config
		size int
	)
	fs.StringVar(&cfg.op, "op", "all", "Operation to time: "+opNames()+" or all")
	fs.IntVar(&size, "size", 128, "Square dimension used when -rows/-inner/-cols are unset")
	fs.IntVar(&cfg.rows, "rows", 0, "Rows of A (and of the result)")
	fs.IntVar(&cfg.inner, "inner", 0, "Cols of A / rows of B (vector length for matvec)")
	fs.IntVar(&cfg.cols, "cols", 0, "Cols of B (matmul only)")
	fs.IntVar(&cfg.opts.Warmup, "warmup", bench.DefaultWarmup, "Warmup iterations (timed and discarded)")
	fs.IntVar(&cfg.opts.Trials, "trials", bench.DefaultTrials, "Measured iterations")
	fs.Int64Var(&cfg.seed, "seed", matrix.DefaultSeed, "Seed for operand generation")
	fs.BoolVar(&cfg.cpu, "cpu", false, "Print detected CPU features")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if size <= 0 {
		return config{}, fmt.Errorf("-size must be > 0, got %d", size)
	}
	for _, d := range []*int{&cfg.rows, &cfg.inner, &cfg.cols} {
		if *d == 0 {
			*d = size
		}
		if *d < 0 {
			return config{}, fmt.Errorf("dimensions must be >= 0, got %d", *d)
		}
	}

	return cfg, nil
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	selected, err := selectOps(cfg.op)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	writeHost(stdout, cfg.cpu)
	for _, o := range selected {
		line, err := o.measure(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", o.name, err)
			return 1
		}
		fmt.Fprintln(stdout, line)
	}

	return 0
}
