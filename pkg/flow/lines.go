package flow

// lineBreaker decides wrap points. Both passes consult the same breaker so
// that they agree on how many items each row holds. Widths are measured over
// the content box, so padding never enters the comparison.
type lineBreaker struct {
	limit   int
	bounded bool
	spacing int
}

func newLineBreaker(contentWidth int, bounded bool, spacing int) lineBreaker {
	return lineBreaker{limit: contentWidth, bounded: bounded, spacing: spacing}
}

// breaks reports whether an item of the given width must start a new row when
// the current row already spans run pixels of content.
func (b lineBreaker) breaks(run, itemWidth int) bool {
	return b.bounded && run+b.spacing+itemWidth > b.limit
}
