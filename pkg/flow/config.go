package flow

import "fmt"

// Padding is the inset between the container edge and its content box.
type Padding struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// PaddingAll returns padding with the same inset on every side.
func PaddingAll(v int) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

// PaddingSymmetric returns padding with the given horizontal and vertical insets.
func PaddingSymmetric(horizontal, vertical int) Padding {
	return Padding{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the sum of left and right padding.
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the sum of top and bottom padding.
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Config controls one layout. It is a plain value; hosts that change spacing
// or sizing mode pass a new Config to the next call.
type Config struct {
	// EqualSizing lays every visible item out at one uniform size.
	EqualSizing bool
	// HorizontalSpacing is the gap between adjacent items in a row.
	HorizontalSpacing int
	// VerticalSpacing is the gap between adjacent rows.
	VerticalSpacing int
	Padding         Padding
}

// Sanitize returns a copy of c with negative spacing and padding clamped to zero.
func (c Config) Sanitize() Config {
	c.HorizontalSpacing = max(c.HorizontalSpacing, 0)
	c.VerticalSpacing = max(c.VerticalSpacing, 0)
	c.Padding.Left = max(c.Padding.Left, 0)
	c.Padding.Top = max(c.Padding.Top, 0)
	c.Padding.Right = max(c.Padding.Right, 0)
	c.Padding.Bottom = max(c.Padding.Bottom, 0)
	return c
}

// String returns a compact description used in diagnostics.
func (c Config) String() string {
	return fmt.Sprintf("equal=%t hspace=%d vspace=%d padding=[%d %d %d %d]",
		c.EqualSizing, c.HorizontalSpacing, c.VerticalSpacing,
		c.Padding.Left, c.Padding.Top, c.Padding.Right, c.Padding.Bottom)
}
