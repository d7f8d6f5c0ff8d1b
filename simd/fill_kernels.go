//go:build amd64 || arm64

package simd

import "encoding/binary"

// Word-wise fill kernels. Only built on the little-endian platforms the
// dispatcher binds them on, where a little-endian word store coincides with
// the native layout of the elements the pattern encodes.
//
// Overlapping stores are what make the tails cheap, and they are safe here
// because every store lands on a multiple of the element width: the buffer
// handed to a kernel is element-aligned with a length that is a multiple of
// the width, every loop stride is a multiple of 8, and the end anchors n-8,
// n-4, n-2 are only used when the width divides them. Two stores that
// overlap therefore agree byte-for-byte.

// store16 writes the pattern to b[off:off+16].
func store16(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:], v)
	binary.LittleEndian.PutUint64(b[off+8:], v)
}

// store32 writes the pattern to b[off:off+32].
func store32(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:], v)
	binary.LittleEndian.PutUint64(b[off+8:], v)
	binary.LittleEndian.PutUint64(b[off+16:], v)
	binary.LittleEndian.PutUint64(b[off+24:], v)
}

// fillTail writes the last len(b)-beg bytes, fewer than 16, using the
// widest store pair that fits: one anchored at beg, one at the end of the
// buffer.
func fillTail(b []byte, beg int, v uint64) {
	n := len(b)
	rem := n - beg
	if rem >= 8 {
		// 8-15 bytes
		binary.LittleEndian.PutUint64(b[beg:], v)
		binary.LittleEndian.PutUint64(b[n-8:], v)
	} else if rem >= 4 {
		// 4-7 bytes
		binary.LittleEndian.PutUint32(b[beg:], uint32(v))
		binary.LittleEndian.PutUint32(b[n-4:], uint32(v))
	} else if rem >= 2 {
		// 2-3 bytes
		binary.LittleEndian.PutUint16(b[beg:], uint16(v))
		binary.LittleEndian.PutUint16(b[n-2:], uint16(v))
	} else if rem == 1 {
		b[beg] = byte(v)
	}
}

// fillBlock128 writes 128-byte blocks of 32-byte chunks.
func fillBlock128(b []byte, v uint64) {
	n := len(b)
	beg := 0

	if n >= 32 {
		// One unaligned 32-byte store up front, then snap to the next
		// 32-byte boundary. The loop below re-covers at most 31 of these
		// bytes; in exchange every store in the loop is aligned.
		store32(b, 0, v)
		beg = alignOffset(b, 0, 32)

		for n-beg >= 128 {
			store32(b, beg, v)
			store32(b, beg+32, v)
			store32(b, beg+64, v)
			store32(b, beg+96, v)
			beg += 128
		}
	}

	for n-beg >= 16 {
		store16(b, beg, v)
		beg += 16
	}

	fillTail(b, beg, v)
}

// fillBlock32 writes 32-byte blocks of 16-byte chunks.
func fillBlock32(b []byte, v uint64) {
	n := len(b)
	beg := 0

	if n >= 16 {
		for n-beg >= 32 {
			store16(b, beg, v)
			store16(b, beg+16, v)
			beg += 32
		}
		if n-beg >= 16 {
			// 16-31 bytes left: two 16-byte stores, overlapping in the
			// middle.
			store16(b, beg, v)
			store16(b, n-16, v)
			return
		}
	}

	fillTail(b, beg, v)
}

// fillWord64 is the no-vector kernel: one word at a time, then the tail
// cascade.
func fillWord64(b []byte, v uint64) {
	n := len(b)
	beg := 0
	for n-beg >= 8 {
		binary.LittleEndian.PutUint64(b[beg:], v)
		beg += 8
	}
	fillTail(b, beg, v)
}
