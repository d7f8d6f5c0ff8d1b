package simd

import "unsafe"

// Integer is the set of element types Fill can broadcast: every fixed-width
// integer kind plus the platform-sized ones. All of them are 1, 2, 4 or 8
// bytes wide, so their byte pattern tiles a 64-bit word exactly.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// Broadcast multipliers: replicating a w-bit element across a 64-bit word
// is a single multiply by the constant with a one at every w-th bit. The
// 8-bit multiplier is lo8.
const (
	rep16 = 0x0001000100010001
	rep32 = 0x0000000100000001
)

// Fill sets every element of dst to val, like a typed memset. The result is
// always exactly equivalent to
//
//	for i := range dst {
//		dst[i] = val
//	}
//
// but runs at the vector width selected at startup: the element is
// broadcast into a 64-bit pattern once and the buffer is then written in
// wide chunks, with the unaligned tail covered by a pair of overlapping
// stores rather than a byte loop.
//
// Example:
//
//	cells := make([]uint32, 80*25)
//	simd.Fill(cells, 0x20|0x07<<8) // blank cell, default attribute
func Fill[T Integer](dst []T, val T) {
	if len(dst) == 0 {
		return
	}

	var zero T
	width := int(unsafe.Sizeof(zero))

	// Mask before multiplying so sign extension from a negative val cannot
	// leak into the other lanes.
	var v uint64
	switch width {
	case 1:
		v = (uint64(val) & 0xFF) * lo8
	case 2:
		v = (uint64(val) & 0xFFFF) * rep16
	case 4:
		v = (uint64(val) & 0xFFFFFFFF) * rep32
	case 8:
		v = uint64(val)
	default:
		panic("simd: unsupported element width")
	}

	if fillImpl == nil {
		for i := range dst {
			dst[i] = val
		}
		return
	}

	b := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst)*width)
	fillImpl(b, v)
}
