// Package render draws the result of a flow layout as PNG, SVG or a
// terminal character grid.
package render

import (
	"github.com/go-drift/flowlayout/pkg/flow"
)

// Frame is one finished layout together with the boxes it placed.
type Frame struct {
	Measurement flow.Measurement
	Placements  []flow.Placement
	Boxes       []*flow.Box
	Config      flow.Config
}

// NewFrame runs a full relayout of boxes and captures the result.
func NewFrame(boxes []*flow.Box, width, height flow.Spec, cfg flow.Config) *Frame {
	items := make([]flow.Item, len(boxes))
	for i, b := range boxes {
		items[i] = b
	}
	m, placements := flow.Frame(items, width, height, cfg)
	return &Frame{
		Measurement: m,
		Placements:  placements,
		Boxes:       boxes,
		Config:      cfg,
	}
}

// Size returns the container size.
func (f *Frame) Size() flow.Size {
	return f.Measurement.Size()
}

// Label returns the label of the box at placement p.
func (f *Frame) Label(p flow.Placement) string {
	if p.Index < 0 || p.Index >= len(f.Boxes) {
		return ""
	}
	return f.Boxes[p.Index].Label
}

// ContentRect returns the container area inside the padding.
func (f *Frame) ContentRect() flow.Rect {
	pad := f.Config.Padding
	size := f.Size()
	return flow.RectFromLTWH(pad.Left, pad.Top,
		max(size.Width-pad.Horizontal(), 0), max(size.Height-pad.Vertical(), 0))
}
