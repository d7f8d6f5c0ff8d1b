// Package coord provides the coordinate types used to address lines, columns,
// rows and rectangular regions of text.
//
// Coordinates are 32-bit signed integers rather than int: they index lines
// and columns, not bytes, and a document with more than two billion lines is
// far past the point where an editor stops being useful. Keeping them narrow
// halves the size of every Point and Rect and makes overflow behavior
// identical on 32- and 64-bit platforms.
//
// Callers that perform arithmetic on coordinates (scrolling deltas, layout
// margins) should stay within [SafeMin, SafeMax] so that intermediate sums
// cannot overflow the underlying int32.
package coord

import "math"

// Coord is the integer type for line and column indices.
type Coord = int32

// Bounds of the coordinate space.
//
// Min and Max are the representable extremes. SafeMin and SafeMax bound the
// range in which coordinate arithmetic (sums and differences of two values)
// is guaranteed not to overflow.
const (
	Min     Coord = math.MinInt32
	Max     Coord = math.MaxInt32
	SafeMin Coord = -32768
	SafeMax Coord = 32767
)

// Clamp returns v limited to the range [lo, hi].
func Clamp(v, lo, hi Coord) Coord {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Point is a position in coordinate space.
type Point struct {
	X Coord
	Y Coord
}

// Size is the extent of a rectangular region.
type Size struct {
	Width  Coord
	Height Coord
}
