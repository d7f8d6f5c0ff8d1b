package coord

// Rect is a rectangular region in coordinate space. Left/Top are inclusive,
// Right/Bottom are exclusive, so Width = Right-Left and Height = Bottom-Top.
type Rect struct {
	Left   Coord
	Top    Coord
	Right  Coord
	Bottom Coord
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() Coord {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() Coord {
	return r.Bottom - r.Top
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the intersection of r and other.
//
// If the rectangles do not overlap, the result is an empty rectangle whose
// Right/Bottom are clamped to Left/Top. The clamping keeps Width and Height
// non-negative, so callers can use them directly as sizes without checking
// IsEmpty first.
func (r Rect) Intersect(other Rect) Rect {
	l := max(r.Left, other.Left)
	t := max(r.Top, other.Top)
	rt := min(r.Right, other.Right)
	b := min(r.Bottom, other.Bottom)

	rt = max(l, rt)
	b = max(t, b)

	return Rect{Left: l, Top: t, Right: rt, Bottom: b}
}
