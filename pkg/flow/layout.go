package flow

// Placement is the position assigned to one visible item.
type Placement struct {
	// Index is the item's position in the slice passed to Layout.
	Index int
	// Row is the zero-based row the item was placed on.
	Row  int
	Rect Rect
}

// Layout runs the placement pass for a container of the given final width,
// padding included. Placements come back in item order, one per visible item.
// A final width whose content box is empty produces no placements.
//
// In equal-size mode the uniform size is derived from the final content
// width. For a width produced by a bounded [Measure] this yields the same
// uniform size the measurement pass used; [Frame] avoids the question by
// reusing the measured sizes.
func Layout(items []Item, finalWidth int, cfg Config) []Placement {
	contentWidth := finalWidth - cfg.Padding.Horizontal()
	if contentWidth <= 0 {
		return nil
	}
	sizes, _ := resolveSizes(items, contentWidth, true, cfg)
	return place(items, sizes, contentWidth, cfg)
}

// place assigns rectangles to the visible items using their effective sizes,
// wrapping at wrapWidth pixels of content.
func place(items []Item, sizes []Size, wrapWidth int, cfg Config) []Placement {
	pad := cfg.Padding
	breaker := newLineBreaker(wrapWidth, true, cfg.HorizontalSpacing)

	left, top := pad.Left, pad.Top
	lineHeight, row := 0, 0
	placements := make([]Placement, 0, len(items))
	for i, item := range items {
		if !item.Visible() {
			continue
		}
		size := sizes[i]
		if len(placements) == 0 {
			lineHeight = size.Height
		} else if breaker.breaks(left-pad.Left, size.Width) {
			left = pad.Left
			top += cfg.VerticalSpacing + lineHeight
			lineHeight = size.Height
			row++
		} else {
			left += cfg.HorizontalSpacing
			lineHeight = max(lineHeight, size.Height)
		}
		placements = append(placements, Placement{
			Index: i,
			Row:   row,
			Rect:  RectFromLTWH(left, top, size.Width, size.Height),
		})
		left += size.Width
	}
	return placements
}

// Frame runs a full relayout: the measurement pass, then the placement pass
// at the measured width.
//
// The placement pass reuses the effective sizes of the measurement pass and
// wraps at the narrower of the measured and final content widths. A lone item
// wider than the bound widens the measured container; the remaining rows
// still wrap where the measurement pass wrapped them, so both passes agree on
// the row count and the required height.
func Frame(items []Item, width, height Spec, cfg Config) (Measurement, []Placement) {
	m := Measure(items, width, height, cfg)
	contentWidth := m.Width - cfg.Padding.Horizontal()
	if contentWidth <= 0 || (m.bounded && m.wrapWidth <= 0) {
		return m, nil
	}
	wrapWidth := contentWidth
	if m.bounded {
		wrapWidth = min(wrapWidth, m.wrapWidth)
	}
	sizes, _ := resolveSizes(items, m.wrapWidth, m.bounded, cfg)
	return m, place(items, sizes, wrapWidth, cfg)
}
