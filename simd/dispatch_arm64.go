//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// Kernel selection for arm64. ASIMD (NEON) ships with every arm64 core, but
// the feature bit is probed anyway: if the OS gives us no feature vector the
// probe reads false and we stay on the reference kernels, which is always
// correct.
func init() {
	if noSIMDEnv() {
		useScalar()
		fillImpl = fillWord64
		return
	}
	if cpu.ARM64.HasASIMD {
		level = LevelNEON
		linesFwdImpl = linesFwdBlock64
		linesBwdImpl = linesBwdBlock64
		fillImpl = fillBlock32
		return
	}
	useScalar()
	fillImpl = fillWord64
}
