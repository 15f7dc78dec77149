package flow

// Item is one child to be laid out. The host owns the item and must have
// measured it before calling [Measure] or [Layout].
type Item interface {
	// NaturalSize returns the size the item measured to without constraints.
	NaturalSize() Size
	// Visible reports whether the item takes part in layout. Invisible items
	// consume no space and never break a row.
	Visible() bool
}

// ExactMeasurer is implemented by items that want to be told the uniform size
// chosen in equal-size mode. [Measure] calls MeasureExact on every visible
// item once that size is known, so the host can re-measure the item's content
// at the size it will actually occupy.
//
// MeasureExact returns the size the item measured to. The packer still lays
// every item out at the uniform size; the result only reports what the
// content needed.
type ExactMeasurer interface {
	MeasureExact(size Size) Size
}

// Box is a plain Item with a fixed natural size. It records the last exact
// size it was asked to take, which renderers use to size labels.
type Box struct {
	Label   string
	Natural Size
	Hidden  bool

	measured Size
	exact    bool
}

// NewBox returns a visible box with the given natural size.
func NewBox(width, height int) *Box {
	return &Box{Natural: Size{Width: width, Height: height}}
}

// NewLabeledBox returns a visible box with a label and natural size.
func NewLabeledBox(label string, size Size) *Box {
	return &Box{Label: label, Natural: size}
}

func (b *Box) NaturalSize() Size {
	return b.Natural
}

func (b *Box) Visible() bool {
	return !b.Hidden
}

// MeasureExact records the uniform size assigned in equal-size mode. A box
// has no content to re-measure, so it takes the size as given.
func (b *Box) MeasureExact(size Size) Size {
	b.measured = size
	b.exact = true
	return size
}

// MeasuredSize returns the last exact size, or the natural size if the box
// was never measured exactly.
func (b *Box) MeasuredSize() Size {
	if b.exact {
		return b.measured
	}
	return b.Natural
}

// ResetMeasurement forgets any exact size, as a host does before starting a
// fresh measurement pass.
func (b *Box) ResetMeasurement() {
	b.measured = Size{}
	b.exact = false
}
