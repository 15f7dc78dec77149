package flow

// Measurement is the result of the measurement pass.
type Measurement struct {
	// Width and Height are the container size to report to the host, after
	// exact constraints have been applied.
	Width  int
	Height int
	// Required is the size the content needs including padding, before
	// exact constraints are applied.
	Required Size
	// ItemSize is the uniform item size in equal-size mode, zero otherwise.
	ItemSize Size
	// Rows is the number of rows the items wrap into.
	Rows int

	// wrapWidth is the content width the pass wrapped at; bounded is false
	// when the width was unspecified.
	wrapWidth int
	bounded   bool
}

// Size returns the reported container size.
func (m Measurement) Size() Size {
	return Size{Width: m.Width, Height: m.Height}
}

// Measure runs the measurement pass: it resolves the effective size of every
// visible item, wraps them into rows against the content width implied by
// width, and returns the size the container needs.
//
// A bounded width whose content box is empty short-circuits to a zero
// required size. With no visible items, the required size is the padding.
// Dimensions constrained with [ModeExactly] report the constraint instead of
// the computed value.
//
// In equal-size mode every visible item implementing [ExactMeasurer] is told
// the uniform size before packing.
func Measure(items []Item, width, height Spec, cfg Config) Measurement {
	pad := cfg.Padding
	contentWidth := width.Size - pad.Horizontal()
	bounded := width.Bounded()

	if bounded && contentWidth <= 0 {
		return Measurement{
			Width:     width.Resolve(0),
			Height:    height.Resolve(0),
			wrapWidth: contentWidth,
			bounded:   bounded,
		}
	}

	sizes, uniform := resolveSizes(items, contentWidth, bounded, cfg)
	if cfg.EqualSizing {
		for _, item := range items {
			if !item.Visible() {
				continue
			}
			if m, ok := item.(ExactMeasurer); ok {
				m.MeasureExact(uniform)
			}
		}
	}

	breaker := newLineBreaker(contentWidth, bounded, cfg.HorizontalSpacing)
	var lineWidth, lineHeight, maxLineWidth, totalHeight, rows int
	for i, item := range items {
		if !item.Visible() {
			continue
		}
		size := sizes[i]
		switch {
		case rows == 0:
			lineWidth, lineHeight = size.Width, size.Height
			rows = 1
		case breaker.breaks(lineWidth, size.Width):
			maxLineWidth = max(maxLineWidth, lineWidth)
			totalHeight += cfg.VerticalSpacing + lineHeight
			lineWidth, lineHeight = size.Width, size.Height
			rows++
		default:
			lineWidth += cfg.HorizontalSpacing + size.Width
			lineHeight = max(lineHeight, size.Height)
		}
	}
	if rows > 0 {
		maxLineWidth = max(maxLineWidth, lineWidth)
		totalHeight += lineHeight
	}

	required := Size{
		Width:  pad.Horizontal() + maxLineWidth,
		Height: pad.Vertical() + totalHeight,
	}
	return Measurement{
		Width:     width.Resolve(required.Width),
		Height:    height.Resolve(required.Height),
		Required:  required,
		ItemSize:  uniform,
		Rows:      rows,
		wrapWidth: contentWidth,
		bounded:   bounded,
	}
}
