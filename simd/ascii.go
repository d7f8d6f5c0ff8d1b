package simd

import (
	"encoding/binary"
	"math/bits"
)

// IsASCII reports whether every byte of data is below 0x80.
//
// ASCII bytes have bit 7 clear, so eight bytes can be checked with a single
// AND against hi8. Text that passes lets callers skip UTF-8 decoding
// entirely and treat byte offsets as column positions.
func IsASCII(data []byte) bool {
	n := len(data)
	idx := 0

	for idx+8 <= n {
		w := binary.LittleEndian.Uint64(data[idx:])
		if w&hi8 != 0 {
			return false
		}
		idx += 8
	}

	for idx < n {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}

	return true
}

// FirstNonASCII returns the index of the first byte of data at or above
// 0x80, or -1 if all bytes are ASCII. This is where a UTF-8 sequence begins
// and where a fast ASCII-only path has to hand over.
func FirstNonASCII(data []byte) int {
	n := len(data)
	idx := 0

	for idx+8 <= n {
		w := binary.LittleEndian.Uint64(data[idx:])
		if m := w & hi8; m != 0 {
			return idx + bits.TrailingZeros64(m)/8
		}
		idx += 8
	}

	for idx < n {
		if data[idx] >= 0x80 {
			return idx
		}
		idx++
	}

	return -1
}
