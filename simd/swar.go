package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR (SIMD Within A Register) constants for byte-wise tricks on uint64.
//
//	lo8 = 0x0101010101010101 (the low bit of every byte)
//	hi8 = 0x8080808080808080 (the high bit of every byte)
const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// broadcast replicates b into every byte of a uint64.
//
// Example: broadcast('\n') = 0x0A0A0A0A0A0A0A0A.
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroByteMask returns a mask with 0x80 in every byte position of w that is
// zero, and 0x00 in every other position. XOR w with a broadcast needle
// first and the mask marks the needle's positions instead.
//
// The trick (Hacker's Delight 6-1): subtracting lo8 makes a zero byte wrap
// to 0xFF, setting its high bit; &^w then discards the bytes that had their
// high bit set to begin with (>= 0x80, which survive the subtraction with
// bit 7 intact); &hi8 keeps only the bit-7 column.
//
// Example, a zero in the second-highest byte:
//
//	w       = 0x4100424344454647
//	w - lo8 = 0x3FFF414243444546   (zero byte wrapped to 0xFF)
//	result  = 0x0080000000000000
func zeroByteMask(w uint64) uint64 {
	return (w - lo8) & ^w & hi8
}

// countEq16 counts the bytes of b[off:off+16] equal to the byte broadcast in
// needle. One 16-byte lane: two word loads, two mask-and-popcount steps.
func countEq16(b []byte, off int, needle uint64) int {
	w0 := binary.LittleEndian.Uint64(b[off:])
	w1 := binary.LittleEndian.Uint64(b[off+8:])
	return bits.OnesCount64(zeroByteMask(w0^needle)) +
		bits.OnesCount64(zeroByteMask(w1^needle))
}

// countEq32 counts the bytes of b[off:off+32] equal to the byte broadcast in
// needle. One 32-byte lane.
func countEq32(b []byte, off int, needle uint64) int {
	w0 := binary.LittleEndian.Uint64(b[off:])
	w1 := binary.LittleEndian.Uint64(b[off+8:])
	w2 := binary.LittleEndian.Uint64(b[off+16:])
	w3 := binary.LittleEndian.Uint64(b[off+24:])
	return bits.OnesCount64(zeroByteMask(w0^needle)) +
		bits.OnesCount64(zeroByteMask(w1^needle)) +
		bits.OnesCount64(zeroByteMask(w2^needle)) +
		bits.OnesCount64(zeroByteMask(w3^needle))
}
