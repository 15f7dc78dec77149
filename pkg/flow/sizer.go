package flow

// maxNaturalSize returns the largest natural width and height across the
// visible items, and whether any item is visible.
func maxNaturalSize(items []Item) (Size, bool) {
	var out Size
	found := false
	for _, item := range items {
		if !item.Visible() {
			continue
		}
		found = true
		natural := item.NaturalSize()
		out.Width = max(out.Width, natural.Width)
		out.Height = max(out.Height, natural.Height)
	}
	return out, found
}

// uniformSize computes the single size every visible item takes in
// equal-size mode. When bounded, the row capacity is derived from the widest
// natural item and the leftover space is spread across that many items so one
// full row spans the content box edge to edge. Items are never shrunk below
// the widest natural width.
func uniformSize(items []Item, contentWidth int, bounded bool, spacing int) Size {
	maxSize, found := maxNaturalSize(items)
	if !found {
		return Size{}
	}
	if !bounded {
		return maxSize
	}

	perRow := 1
	if maxSize.Width > 0 {
		perRow = (contentWidth + spacing) / (spacing + maxSize.Width)
	}
	// The widest item does not fit the content box. Keep its natural width so
	// every item overflows on a row of its own instead of shrinking.
	if perRow < 1 {
		return maxSize
	}

	width := (contentWidth - (perRow-1)*spacing) / perRow
	return Size{Width: max(width, 0), Height: maxSize.Height}
}

// resolveSizes returns the effective size of every item, indexed like items.
// Invisible items get a zero size. The uniform size is returned separately and
// is zero unless cfg.EqualSizing is set.
func resolveSizes(items []Item, contentWidth int, bounded bool, cfg Config) ([]Size, Size) {
	sizes := make([]Size, len(items))
	var uniform Size
	if cfg.EqualSizing {
		uniform = uniformSize(items, contentWidth, bounded, cfg.HorizontalSpacing)
	}
	for i, item := range items {
		if !item.Visible() {
			continue
		}
		if cfg.EqualSizing {
			sizes[i] = uniform
		} else {
			sizes[i] = item.NaturalSize()
		}
	}
	return sizes, uniform
}

// UniformSize returns the size every visible item is laid out at in
// equal-size mode, given the width of the content box. It returns the zero
// size when no item is visible.
func UniformSize(items []Item, contentWidth int, cfg Config) Size {
	return uniformSize(items, contentWidth, true, cfg.HorizontalSpacing)
}

// EffectiveSizes returns the size each item is laid out at for a content box
// of the given width, indexed like items. Invisible items get a zero size.
func EffectiveSizes(items []Item, contentWidth int, cfg Config) []Size {
	sizes, _ := resolveSizes(items, contentWidth, true, cfg)
	return sizes
}
