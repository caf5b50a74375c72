// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// feature is a named CPU capability flag.
type feature struct {
	name string
	has  bool
}

// cpuFeatures reports the SIMD capabilities relevant to dense float64 kernels
// on the running architecture. It is nil on architectures we don't probe.
func cpuFeatures() []feature {
	switch runtime.GOARCH {
	case "amd64", "386":
		return []feature{
			{"sse4.1", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fphp", cpu.ARM64.HasFPHP},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	return nil
}

func formatFeatures(fs []feature) string {
	if len(fs) == 0 {
		return "n/a"
	}
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = fmt.Sprintf("%s=%t", f.name, f.has)
	}

	return strings.Join(parts, " ")
}

// writeHost prints the host header, plus the feature line when withCPU is set.
func writeHost(w io.Writer, withCPU bool) {
	fmt.Fprintf(w, "host: %s/%s cpus=%d go=%s\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.Version())
	if withCPU {
		fmt.Fprintf(w, "cpu: %s\n", formatFeatures(cpuFeatures()))
	}
}
