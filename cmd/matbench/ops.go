// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/nla/bench"
	"github.com/katalvlaran/nla/matrix"
)

// op is one benchmarkable kernel.
type op struct {
	name  string
	shape func(c config) string
	flops func(c config) float64
	time  func(c config) (bench.Result, error)
}

// ops lists the kernels in report order.
var ops = []op{
	{
		name:  "matmul",
		shape: func(c config) string { return fmt.Sprintf("%dx%dx%d", c.rows, c.inner, c.cols) },
		flops: func(c config) float64 { return 2 * float64(c.rows) * float64(c.inner) * float64(c.cols) },
		time:  timeMatmul,
	},
	{
		name:  "matvec",
		shape: func(c config) string { return fmt.Sprintf("%dx%d", c.rows, c.inner) },
		flops: func(c config) float64 { return 2 * float64(c.rows) * float64(c.inner) },
		time:  timeMatVec,
	},
}

func opNames() string {
	names := make([]string, len(ops))
	for i, o := range ops {
		names[i] = o.name
	}

	return strings.Join(names, ",")
}

// selectOps resolves the -op flag.
func selectOps(name string) ([]op, error) {
	if name == "all" {
		return ops, nil
	}
	for _, o := range ops {
		if o.name == name {
			return []op{o}, nil
		}
	}

	return nil, fmt.Errorf("unknown -op %q (want %s or all)", name, opNames())
}

type matmulArgs struct {
	a, b *matrix.View
	c    *matrix.ViewMut
}

func timeMatmul(c config) (bench.Result, error) {
	var setupErr error
	res, err := bench.Measure(c.opts,
		func() matmulArgs {
			a, err := matrix.NewRand(c.rows, c.inner, matrix.WithSeed(c.seed))
			if err != nil {
				setupErr = err
				return matmulArgs{}
			}
			b, err := matrix.NewRand(c.inner, c.cols, matrix.WithSeed(c.seed+1))
			if err != nil {
				setupErr = err
				return matmulArgs{}
			}
			out, err := matrix.NewZeros(c.rows, c.cols)
			if err != nil {
				setupErr = err
				return matmulArgs{}
			}
			return matmulArgs{a: a.View(), b: b.View(), c: out.ViewMut()}
		},
		func(args matmulArgs) {
			if setupErr != nil {
				return
			}
			if err := matrix.Matmul(args.a, args.b, args.c); err != nil {
				setupErr = err
			}
		},
	)
	if err != nil {
		return bench.Result{}, err
	}

	return res, setupErr
}

type matvecArgs struct {
	a    *matrix.Dense
	v, u []float64
}

func timeMatVec(c config) (bench.Result, error) {
	var setupErr error
	res, err := bench.Measure(c.opts,
		func() matvecArgs {
			a, err := matrix.NewRand(c.rows, c.inner, matrix.WithSeed(c.seed))
			if err != nil {
				setupErr = err
				return matvecArgs{}
			}
			v, err := matrix.NewRand(1, c.inner, matrix.WithSeed(c.seed+1))
			if err != nil {
				setupErr = err
				return matvecArgs{}
			}
			return matvecArgs{a: a, v: v.RawData(), u: make([]float64, c.rows)}
		},
		func(args matvecArgs) {
			if setupErr != nil {
				return
			}
			if err := matrix.MatVecMul(args.a, args.v, args.u); err != nil {
				setupErr = err
			}
		},
	)
	if err != nil {
		return bench.Result{}, err
	}

	return res, setupErr
}

// label title-cases the op name for the report ("matmul" → "Matmul").
func label(name string) string {
	return cases.Title(language.English).String(name)
}

// measure runs the op and formats one report line.
func (o op) measure(c config) (string, error) {
	res, err := o.time(c)
	if err != nil {
		return "", err
	}
	secs := res.Seconds()
	gflops := 0.0
	if secs > 0 {
		gflops = o.flops(c) / secs / 1e9
	}

	return fmt.Sprintf("%-8s %s  warmup=%d trials=%d  mean=%.6fs min=%s max=%s  %.3f GFLOP/s",
		label(o.name), o.shape(c), c.opts.Warmup, c.opts.Trials,
		secs, res.Min, res.Max, gflops), nil
}
