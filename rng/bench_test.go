package rng_test

import (
	"testing"

	"github.com/katalvlaran/nla/rng"
)

var sinkF float64

func BenchmarkNextFloat64(b *testing.B) {
	b.ReportAllocs()
	src := rng.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = src.NextFloat64()
	}
}
