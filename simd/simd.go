// Package simd provides architecture-adaptive scanning and fill primitives
// for text buffers. The package selects the best kernel family for the
// running CPU once at package initialization (AVX2-class on x86-64, NEON on
// arm64) and falls back to portable scalar implementations on other
// platforms.
//
// The primary use cases are translating byte offsets to line indices at
// memory bandwidth (LinesForward, LinesBackward) and filling typed buffers
// with a repeating element (Fill). Both are hot paths in editors and
// renderers: the former runs on every scroll and goto-line, the latter on
// every screen clear and gap initialization.
//
// All functions are pure over caller-owned memory: nothing is allocated,
// retained, or synchronized. Results are identical across kernel families;
// the scalar implementations are the reference the vectorized ones are
// tested against.
package simd

import (
	"os"
	"strconv"
)

// Level identifies the kernel family selected for this process.
type Level int

// Kernel families in ascending order of vector width. The zero value is
// LevelScalar, so an uninitialized level means the reference kernels.
const (
	// LevelScalar uses byte-at-a-time reference kernels.
	LevelScalar Level = iota

	// LevelSSE2 processes 64-byte blocks through 16-byte lanes.
	// Baseline for every amd64 CPU.
	LevelSSE2

	// LevelNEON processes 64-byte blocks through 16-byte lanes.
	// Baseline for every arm64 CPU.
	LevelNEON

	// LevelAVX2 processes 128-byte blocks through 32-byte lanes.
	LevelAVX2
)

// String returns the conventional lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelNEON:
		return "neon"
	case LevelAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// linesKernel scans text between the absolute indices beg and end, counting
// newlines against a target line. Forward kernels start at beg and return the
// new position in [beg, end]; backward kernels start at end and return the
// new position in [beg, end]. All kernels agree with the scalar reference on
// every input.
type linesKernel func(text []byte, beg, end int, line, lineStop int32) (int, int32)

// fillKernel writes the broadcast pattern val to every byte of b. The
// pattern is a 64-bit word whose little-endian byte sequence repeats the
// logical element, so the kernels only ever deal in bytes and words.
type fillKernel func(b []byte, val uint64)

// The kernels resolved for this process. They are written exactly once,
// during package init, and only read afterwards: init completes before any
// other package can call into this one, so no synchronization is needed on
// the hot path. A nil fillImpl selects the portable per-element fill in
// Fill; see the dispatch files for what gets bound where.
var (
	level        Level
	linesFwdImpl linesKernel
	linesBwdImpl linesKernel
	fillImpl     fillKernel
)

// CurrentLevel returns the kernel family selected at startup.
func CurrentLevel() Level {
	return level
}

// CurrentName returns the name of the selected kernel family, e.g. "avx2".
func CurrentName() string {
	return level.String()
}

// noSIMDEnv reports whether the BYTEALG_NO_SIMD environment variable asks for
// the scalar kernels. Any non-empty value counts as true unless it parses as
// a false boolean, so BYTEALG_NO_SIMD=1, =true and =yes all disable vector
// dispatch while =0 and =false keep it.
func noSIMDEnv() bool {
	val, ok := os.LookupEnv("BYTEALG_NO_SIMD")
	if !ok || val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// useScalar binds the reference kernels. Called by the dispatch files when
// the CPU offers nothing better or when BYTEALG_NO_SIMD is set.
func useScalar() {
	level = LevelScalar
	linesFwdImpl = linesFwdScalar
	linesBwdImpl = linesBwdScalar
	fillImpl = nil
}
