//go:build amd64 || arm64

package simd

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unsafe"
)

var fillKernels = []struct {
	name string
	fn   fillKernel
}{
	{"word64", fillWord64},
	{"block32", fillBlock32},
	{"block128", fillBlock128},
}

// patternWord builds the broadcast word for an element of the given width
// from distinct marker bytes, and returns the element bytes for per-byte
// verification.
func patternWord(width int) (uint64, []byte) {
	elem := []byte{0xC1, 0x5A, 0x33, 0xE4, 0x7B, 0x96, 0x2D, 0xF8}[:width]
	var p [8]byte
	for i := range p {
		p[i] = elem[i%width]
	}
	return binary.LittleEndian.Uint64(p[:]), elem
}

// TestFillKernels drives every kernel over every element width, window
// length and element-aligned base shift, verifying each byte of the window
// and the guards around it. The parent is a []uint64 so the base address is
// 8-byte aligned by construction, as it is for any real element slice.
func TestFillKernels(t *testing.T) {
	const guard = 32
	const maxCount = 48

	parent := make([]uint64, 60)
	pb := unsafe.Slice((*byte)(unsafe.Pointer(&parent[0])), len(parent)*8)

	for _, k := range fillKernels {
		for _, width := range []int{1, 2, 4, 8} {
			v, elem := patternWord(width)
			maxShift := 32 / width

			for count := 0; count <= maxCount; count++ {
				size := count * width
				for shift := 0; shift < maxShift; shift++ {
					for i := range pb {
						pb[i] = 0xEE
					}
					start := guard + shift*width

					k.fn(pb[start:start+size], v)

					for i := range pb {
						if i >= start && i < start+size {
							if want := elem[(i-start)%width]; pb[i] != want {
								t.Fatalf("%s width=%d count=%d shift=%d: byte %d = %#x, want %#x",
									k.name, width, count, shift, i, pb[i], want)
							}
						} else if pb[i] != 0xEE {
							t.Fatalf("%s width=%d count=%d shift=%d: guard byte %d clobbered (%#x)",
								k.name, width, count, shift, i, pb[i])
						}
					}
				}
			}
		}
	}
}

// TestFillTailOverlap pins the overlapping tail stores on the classic
// values: seven bytes written from a 4-byte element. The cascade issues two
// 4-byte stores, at offset 0 and offset 3; the second wins the overlap, so
// the last four bytes read back as the element exactly and the first three
// keep phase zero.
func TestFillTailOverlap(t *testing.T) {
	b := make([]byte, 7)
	fillTail(b, 0, 0xCAFEBABECAFEBABE)

	want := []byte{0xBE, 0xBA, 0xFE, 0xBE, 0xBA, 0xFE, 0xCA}
	if !bytes.Equal(b, want) {
		t.Errorf("tail bytes = % x, want % x", b, want)
	}
	if got := binary.LittleEndian.Uint32(b[3:]); got != 0xCAFEBABE {
		t.Errorf("end-anchored word = %#x, want 0xCAFEBABE", got)
	}
}

// BenchmarkFillKernels compares the kernel families head to head.
func BenchmarkFillKernels(b *testing.B) {
	buf := make([]byte, 65536)
	v := broadcast(0xAB)

	for _, k := range fillKernels {
		b.Run(k.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				k.fn(buf, v)
			}
		})
	}
}
