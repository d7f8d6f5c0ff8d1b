package simd

import "unsafe"

// The block kernels share one discipline: count the newlines in a whole
// block, and only commit the block if that leaves the scan short of
// lineStop. A block that would reach or pass the target is abandoned and
// handed to the next narrower loop, ending with the scalar kernel, which
// pinpoints the exact byte. Counting is cheap and branch-free; pinpointing
// is scalar but runs over at most one block.

// linesFwdScalar is the forward reference kernel: one byte at a time from
// beg toward end.
func linesFwdScalar(text []byte, beg, end int, line, lineStop int32) (int, int32) {
	if line < lineStop {
		for beg < end {
			c := text[beg]
			beg++
			if c == '\n' {
				line++
				if line == lineStop {
					break
				}
			}
		}
	}
	return beg, line
}

// linesBwdScalar is the backward reference kernel: one byte at a time from
// end toward beg, stopping just past a newline once line <= lineStop.
func linesBwdScalar(text []byte, beg, end int, line, lineStop int32) (int, int32) {
	for end > beg {
		c := text[end-1]
		if c == '\n' {
			if line <= lineStop {
				break
			}
			line--
		}
		end--
	}
	return end, line
}

// linesFwdBlock64 scans forward through 64-byte blocks of 16-byte lanes.
func linesFwdBlock64(text []byte, beg, end int, line, lineStop int32) (int, int32) {
	// Scalar-advance to the next 16-byte boundary so the lane loads below
	// are aligned.
	if off := alignOffset(text, beg, 16); off != 0 && off < end-beg {
		beg, line = linesFwdScalar(text, beg, beg+off, line, lineStop)
	}

	if line < lineStop {
		lf := broadcast('\n')

		for end-beg >= 64 {
			sum := countEq16(text, beg, lf) +
				countEq16(text, beg+16, lf) +
				countEq16(text, beg+32, lf) +
				countEq16(text, beg+48, lf)
			lineNext := line + int32(sum)
			if lineNext >= lineStop {
				break
			}
			beg += 64
			line = lineNext
		}

		for end-beg >= 16 {
			lineNext := line + int32(countEq16(text, beg, lf))
			if lineNext >= lineStop {
				break
			}
			beg += 16
			line = lineNext
		}
	}

	return linesFwdScalar(text, beg, end, line, lineStop)
}

// linesFwdBlock128 scans forward through 128-byte blocks of 32-byte lanes.
func linesFwdBlock128(text []byte, beg, end int, line, lineStop int32) (int, int32) {
	if off := alignOffset(text, beg, 32); off != 0 && off < end-beg {
		beg, line = linesFwdScalar(text, beg, beg+off, line, lineStop)
	}

	if line < lineStop {
		lf := broadcast('\n')

		for end-beg >= 128 {
			sum := countEq32(text, beg, lf) +
				countEq32(text, beg+32, lf) +
				countEq32(text, beg+64, lf) +
				countEq32(text, beg+96, lf)
			lineNext := line + int32(sum)
			if lineNext >= lineStop {
				break
			}
			beg += 128
			line = lineNext
		}

		for end-beg >= 32 {
			lineNext := line + int32(countEq32(text, beg, lf))
			if lineNext >= lineStop {
				break
			}
			beg += 32
			line = lineNext
		}
	}

	return linesFwdScalar(text, beg, end, line, lineStop)
}

// linesBwdBlock64 scans backward through 64-byte blocks of 16-byte lanes.
// A block is committed only while the count stays at or above lineStop:
// the stopping newline is by definition inside the first block that would
// drop below it.
func linesBwdBlock64(text []byte, beg, end int, line, lineStop int32) (int, int32) {
	// Scalar-retreat to the previous 16-byte boundary.
	if off := misalign(text, end, 16); off != 0 && off < end-beg {
		end, line = linesBwdScalar(text, end-off, end, line, lineStop)
	}

	lf := broadcast('\n')

	for end-beg >= 64 {
		sum := countEq16(text, end-64, lf) +
			countEq16(text, end-48, lf) +
			countEq16(text, end-32, lf) +
			countEq16(text, end-16, lf)
		lineNext := line - int32(sum)
		if lineNext < lineStop {
			break
		}
		end -= 64
		line = lineNext
	}

	for end-beg >= 16 {
		lineNext := line - int32(countEq16(text, end-16, lf))
		if lineNext < lineStop {
			break
		}
		end -= 16
		line = lineNext
	}

	return linesBwdScalar(text, beg, end, line, lineStop)
}

// linesBwdBlock128 scans backward through 128-byte blocks of 32-byte lanes.
func linesBwdBlock128(text []byte, beg, end int, line, lineStop int32) (int, int32) {
	if off := misalign(text, end, 32); off != 0 && off < end-beg {
		end, line = linesBwdScalar(text, end-off, end, line, lineStop)
	}

	lf := broadcast('\n')

	for end-beg >= 128 {
		sum := countEq32(text, end-128, lf) +
			countEq32(text, end-96, lf) +
			countEq32(text, end-64, lf) +
			countEq32(text, end-32, lf)
		lineNext := line - int32(sum)
		if lineNext < lineStop {
			break
		}
		end -= 128
		line = lineNext
	}

	for end-beg >= 32 {
		lineNext := line - int32(countEq32(text, end-32, lf))
		if lineNext < lineStop {
			break
		}
		end -= 32
		line = lineNext
	}

	return linesBwdScalar(text, beg, end, line, lineStop)
}

// alignOffset returns how many bytes past text[off] the next width-aligned
// address lies, in [0, width). width must be a power of two.
func alignOffset(text []byte, off, width int) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(text))) + uintptr(off)
	return int(-addr & uintptr(width-1))
}

// misalign returns how many bytes text[off] sits above the previous
// width-aligned address, in [0, width). width must be a power of two.
func misalign(text []byte, off, width int) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(text))) + uintptr(off)
	return int(addr & uintptr(width-1))
}
