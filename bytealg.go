// Package bytealg provides architecture-adaptive byte primitives for text
// editors and renderers: newline seeking, typed buffer fills, byte search,
// and ASCII scanning.
//
// The heavy lifting lives in the subpackages and is re-exported here so most
// callers need a single import:
//   - simd: the kernels and their per-CPU dispatch
//   - coord: bounded editor coordinates (lines, columns, rectangles)
//   - wyhash: fast non-cryptographic hashing for caches and interning
//
// Kernel selection happens once at startup. On x86-64 the package uses
// 128-byte blocks when AVX2 is present and 64-byte blocks otherwise; on
// arm64 it uses 64-byte blocks; everywhere else, a byte-at-a-time reference
// implementation with identical results. Setting BYTEALG_NO_SIMD=1 forces
// the reference kernels.
//
// Basic usage:
//
//	// Jump to line 100 of a buffer.
//	off, line := bytealg.LinesForward(buf, 0, 0, 100)
//
//	// Blank a row of screen cells.
//	bytealg.Fill(cells, emptyCell)
//
//	// Find the end of the current line.
//	if i := bytealg.Memchr(buf[off:], '\n'); i >= 0 {
//	    lineEnd := off + i
//	}
//
// Every function is a pure, synchronous operation over caller-owned memory:
// nothing is retained, allocated, or locked.
package bytealg

import (
	"github.com/coregx/bytealg/simd"
	"github.com/coregx/bytealg/wyhash"
)

// Integer is the element constraint for Fill, re-exported from simd.
type Integer = simd.Integer

// LinesForward scans text from offset toward the end, counting newlines
// until line reaches lineStop. It returns the offset just past the newline
// that completed the count (the start of line lineStop) and the new line;
// if the text runs out first, it returns len(text) and the lines actually
// counted. See simd.LinesForward.
func LinesForward(text []byte, offset int, line, lineStop int32) (int, int32) {
	return simd.LinesForward(text, offset, line, lineStop)
}

// LinesBackward scans text from offset toward the beginning, decrementing
// line for each newline crossed while line > lineStop. The returned offset
// is always a line start. See simd.LinesBackward.
func LinesBackward(text []byte, offset int, line, lineStop int32) (int, int32) {
	return simd.LinesBackward(text, offset, line, lineStop)
}

// Fill sets every element of dst to val. See simd.Fill.
func Fill[T Integer](dst []T, val T) {
	simd.Fill(dst, val)
}

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	return simd.Memchr(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return simd.Memchr2(haystack, needle1, needle2)
}

// IsASCII reports whether every byte of data is below 0x80.
func IsASCII(data []byte) bool {
	return simd.IsASCII(data)
}

// FirstNonASCII returns the index of the first byte at or above 0x80, or -1
// if all bytes are ASCII.
func FirstNonASCII(data []byte) int {
	return simd.FirstNonASCII(data)
}

// Hash returns the 64-bit wyhash of data under the given seed.
func Hash(seed uint64, data []byte) uint64 {
	return wyhash.Hash(seed, data)
}

// HashString is Hash for strings, without copying.
func HashString(seed uint64, s string) uint64 {
	return wyhash.HashString(seed, s)
}

// SIMDLevel returns the name of the kernel family selected at startup, e.g.
// "avx2", "neon" or "scalar".
func SIMDLevel() string {
	return simd.CurrentName()
}
