package bytealg_test

import (
	"fmt"

	"github.com/coregx/bytealg"
)

// ExampleLinesForward demonstrates seeking a target line from the top of a
// buffer.
func ExampleLinesForward() {
	text := []byte("one\ntwo\nthree\n")

	// Seek the start of line 2 (zero-based).
	off, line := bytealg.LinesForward(text, 0, 0, 2)
	fmt.Println(off, line)
	// Output: 8 2
}

// ExampleLinesBackward demonstrates climbing back to an earlier line start.
func ExampleLinesBackward() {
	text := []byte("one\ntwo\nthree\n")

	// From the end of the buffer on line 3, climb back to line 1.
	off, line := bytealg.LinesBackward(text, len(text), 3, 1)
	fmt.Println(off, line)
	// Output: 4 1
}

// ExampleFill demonstrates a typed fill, here blanking a row of cells.
func ExampleFill() {
	row := make([]uint16, 8)
	bytealg.Fill(row, uint16(0x2588))
	fmt.Printf("%04x\n", row)
	// Output: [2588 2588 2588 2588 2588 2588 2588 2588]
}

// ExampleMemchr demonstrates finding the end of a line.
func ExampleMemchr() {
	line := []byte("key = value\nnext line")
	fmt.Println(bytealg.Memchr(line, '\n'))
	// Output: 11
}

// ExampleMemchr2 demonstrates scanning for a line break of either flavor.
func ExampleMemchr2() {
	text := []byte("first\r\nsecond")
	fmt.Println(bytealg.Memchr2(text, '\n', '\r'))
	// Output: 5
}

// ExampleIsASCII demonstrates the fast-path check for plain ASCII text.
func ExampleIsASCII() {
	fmt.Println(bytealg.IsASCII([]byte("plain text")))
	fmt.Println(bytealg.IsASCII([]byte("héllo")))
	// Output:
	// true
	// false
}
