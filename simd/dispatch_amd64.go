//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// Kernel selection for x86-64. This runs once, before main and before any
// caller can reach the kernels, so the bindings below are immutable for the
// life of the process.
//
// SSE2 is part of the amd64 baseline, so the narrow kernels need no feature
// probe; only the 32-byte-lane family is gated on AVX2.
func init() {
	if noSIMDEnv() {
		useScalar()
		fillImpl = fillWord64
		return
	}
	if cpu.X86.HasAVX2 {
		level = LevelAVX2
		linesFwdImpl = linesFwdBlock128
		linesBwdImpl = linesBwdBlock128
		fillImpl = fillBlock128
		return
	}
	level = LevelSSE2
	linesFwdImpl = linesFwdBlock64
	linesBwdImpl = linesBwdBlock64
	fillImpl = fillBlock32
}
