// Package nla is a small dense-matrix numerical kernel: row-major float64
// matrices, read-only and mutable row views, a reproducible LCG, the
// naive i-k-j product and a matrix-vector product, plus a micro-benchmark
// harness to time them.
//
// Everything is organized under three library packages and one command:
//
//	rng/           deterministic linear congruential generator (a=1664525, c=1013904223, m=2^32)
//	matrix/        Dense, View, ViewMut, Matmul, MulInto, MatVecMul, validators, gonum interop
//	bench/         warmup + trials harness with untimed per-iteration setup
//	cmd/matbench/  command-line driver reporting seconds and GFLOP/s per kernel
//
// Results are bit-reproducible: products are rounded before accumulation
// (no fused multiply-add) and operands come from a seeded generator, so a
// given seed and shape yield the same output on every architecture.
//
// Quick start:
//
//	a, _ := matrix.NewRand(64, 32)
//	b, _ := matrix.NewRand(32, 16, matrix.WithSeed(7))
//	c, _ := matrix.NewZeros(64, 16)
//	if err := matrix.Matmul(a.View(), b.View(), c.ViewMut()); err != nil {
//		// errors.Is(err, matrix.ErrDimensionMismatch)
//	}
//
//	go get github.com/katalvlaran/nla
package nla
