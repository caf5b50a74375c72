package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nla/bench"
	"github.com/katalvlaran/nla/matrix"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "all", cfg.op)
	require.Equal(t, 128, cfg.rows)
	require.Equal(t, 128, cfg.inner)
	require.Equal(t, 128, cfg.cols)
	require.Equal(t, bench.DefaultWarmup, cfg.opts.Warmup)
	require.Equal(t, bench.DefaultTrials, cfg.opts.Trials)
	require.Equal(t, matrix.DefaultSeed, cfg.seed)
	require.False(t, cfg.cpu)
}

func TestParseFlags_DimensionOverride(t *testing.T) {
	cfg, err := parseFlags([]string{"-size", "16", "-rows", "4", "-cols", "9"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 4, cfg.rows)
	require.Equal(t, 16, cfg.inner)
	require.Equal(t, 9, cfg.cols)
}

func TestParseFlags_Rejects(t *testing.T) {
	cases := [][]string{
		{"-size", "0"},
		{"-rows", "-2"},
		{"stray"},
		{"-nosuchflag"},
	}
	for _, args := range cases {
		_, err := parseFlags(args, &bytes.Buffer{})
		require.Error(t, err, "args %v", args)
	}
}

func TestSelectOps(t *testing.T) {
	all, err := selectOps("all")
	require.NoError(t, err)
	require.Len(t, all, 2)

	one, err := selectOps("matvec")
	require.NoError(t, err)
	require.Len(t, one, 1)
	require.Equal(t, "matvec", one[0].name)

	_, err = selectOps("lu")
	require.Error(t, err)
}

func TestLabel(t *testing.T) {
	require.Equal(t, "Matmul", label("matmul"))
	require.Equal(t, "Matvec", label("matvec"))
}

func TestFormatFeatures(t *testing.T) {
	require.Equal(t, "n/a", formatFeatures(nil))
	require.Equal(t, "avx=true fma=false", formatFeatures([]feature{{"avx", true}, {"fma", false}}))
}

// TestRun_Report drives the whole command on tiny operands.
func TestRun_Report(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-size", "8", "-warmup", "1", "-trials", "2", "-cpu"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4) // host, cpu, matmul, matvec
	require.True(t, strings.HasPrefix(lines[0], "host: "))
	require.True(t, strings.HasPrefix(lines[1], "cpu: "))
	require.True(t, strings.HasPrefix(lines[2], "Matmul"))
	require.Contains(t, lines[2], "8x8x8")
	require.Contains(t, lines[2], "GFLOP/s")
	require.True(t, strings.HasPrefix(lines[3], "Matvec"))
}

// TestRun_MatvecShapeOmitsCols checks -cols does not leak into the matvec line.
func TestRun_MatvecShapeOmitsCols(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-op", "matvec", "-rows", "3", "-inner", "5", "-cols", "7", "-warmup", "0", "-trials", "1"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "Matvec   3x5  ")
	require.NotContains(t, out.String(), "3x5x7")
}

// TestTimeOps_SetupErrorSurfaces checks a failed operand build is reported, not run.
func TestTimeOps_SetupErrorSurfaces(t *testing.T) {
	cfg := config{rows: 2, inner: 2, cols: -1, opts: bench.Options{Trials: 1}, seed: 1}
	_, err := timeMatmul(cfg)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cfg = config{rows: 2, inner: -1, opts: bench.Options{Trials: 1}, seed: 1}
	_, err = timeMatVec(cfg)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 1, run([]string{"-op", "nope"}, &out, &errOut))
	require.Contains(t, errOut.String(), "unknown -op")

	errOut.Reset()
	require.Equal(t, 1, run([]string{"-trials", "0", "-size", "2"}, &out, &errOut))
	require.Contains(t, errOut.String(), "Trials=0")
}

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run([]string{"-h"}, &out, &errOut))
	require.Contains(t, errOut.String(), "-trials")
}
