package flow

import "fmt"

// Size holds a 2D size in pixels.
type Size struct {
	Width  int
	Height int
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// RectFromLTWH constructs a rectangle from its left/top origin and size.
func RectFromLTWH(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Intersects reports whether r and other share any interior area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right() && other.Left < r.Right() &&
		r.Top < other.Bottom() && other.Top < r.Bottom()
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Top, r.Width, r.Height)
}
