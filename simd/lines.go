package simd

// LinesForward scans text from offset toward the end, counting newline bytes
// until line reaches lineStop, and returns the new offset and line. The
// offset it returns points one past the newline that completed the count, so
// it is the start of line lineStop. If the target line does not exist the
// scan stops at len(text) with the number of newlines actually seen added to
// line. If line >= lineStop already, the call is a no-op.
//
// An out-of-range offset is clamped to [0, len(text)].
//
// The scan runs at the vector width selected at startup and costs nothing
// beyond the bytes it actually inspects: blocks whose newline count would
// overshoot lineStop are re-scanned byte-wise to pinpoint the stopping
// position.
//
// Example:
//
//	text := []byte("one\ntwo\nthree\n")
//	off, line := simd.LinesForward(text, 0, 0, 2)
//	// off == 8 (start of "three"), line == 2
func LinesForward(text []byte, offset int, line, lineStop int32) (int, int32) {
	if offset < 0 {
		offset = 0
	} else if offset > len(text) {
		offset = len(text)
	}
	return linesFwdImpl(text, offset, len(text), line, lineStop)
}

// LinesBackward scans text from offset toward the beginning, decrementing
// line for each newline crossed while line > lineStop, and returns the new
// offset and line. The scan stops just past a newline, so the returned
// offset is always the first byte of a line: the start of line lineStop when
// it exists, the start of the current line when line == lineStop on entry,
// or 0 when the scan reaches the beginning of the buffer.
//
// An out-of-range offset is clamped to [0, len(text)].
//
// Example:
//
//	text := []byte("one\ntwo\nthree\n")
//	off, line := simd.LinesBackward(text, len(text), 3, 1)
//	// off == 4 (start of "two"), line == 1
func LinesBackward(text []byte, offset int, line, lineStop int32) (int, int32) {
	if offset < 0 {
		offset = 0
	} else if offset > len(text) {
		offset = len(text)
	}
	return linesBwdImpl(text, 0, offset, line, lineStop)
}
