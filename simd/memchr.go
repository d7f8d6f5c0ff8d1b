package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte. It processes eight bytes
// per iteration with SWAR word operations on every platform; in an editor it
// is the workhorse behind "find the end of this line".
//
// Example:
//
//	line := []byte("key = value\n")
//	pos := simd.Memchr(line, '\n')
//	// pos == 11
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// For small inputs, byte-by-byte has no setup overhead.
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := broadcast(needle)
	idx := 0

	for idx+8 <= n {
		w := binary.LittleEndian.Uint64(haystack[idx:])

		// XOR turns matching bytes into 0x00; zeroByteMask flags them.
		if m := zeroByteMask(w ^ mask); m != 0 {
			// The flag sits in bit 7 of the matching byte, so the bit
			// position divided by 8 is the byte position.
			return idx + bits.TrailingZeros64(m)/8
		}

		idx += 8
	}

	for idx < n {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
//
// Both needles are checked in the same pass, so this costs the same as a
// single Memchr rather than two. The classic use is scanning for a line
// break of either flavor:
//
//	pos := simd.Memchr2(text, '\n', '\r')
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)

	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	idx := 0

	for idx+8 <= n {
		w := binary.LittleEndian.Uint64(haystack[idx:])

		m := zeroByteMask(w^mask1) | zeroByteMask(w^mask2)
		if m != 0 {
			return idx + bits.TrailingZeros64(m)/8
		}

		idx += 8
	}

	for idx < n {
		if c := haystack[idx]; c == needle1 || c == needle2 {
			return idx
		}
		idx++
	}

	return -1
}
