// Package measure sizes labeled items the way a host toolkit would before
// handing them to the flow packer.
package measure

import (
	"strings"

	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurer computes the natural size of a text label.
type Measurer interface {
	Measure(label string) flow.Size
}

// Inset is the space a measurer adds around a label's text.
type Inset struct {
	Horizontal int
	Vertical   int
}

// Cells measures labels in terminal cells. Wide runes (CJK, emoji) count as
// two cells. Multi-line labels take the width of their widest line.
type Cells struct {
	Inset Inset
}

// Measure returns the label size in cells.
func (c Cells) Measure(label string) flow.Size {
	lines := strings.Split(label, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return flow.Size{
		Width:  width + 2*c.Inset.Horizontal,
		Height: len(lines) + 2*c.Inset.Vertical,
	}
}

// Face measures labels in pixels with a font face. A nil Face uses
// basicfont.Face7x13.
type Face struct {
	Face  font.Face
	Inset Inset
}

// DefaultFace returns a pixel measurer with the basic 7x13 face and a small
// inset.
func DefaultFace() Face {
	return Face{Face: basicfont.Face7x13, Inset: Inset{Horizontal: 8, Vertical: 6}}
}

func (f Face) face() font.Face {
	if f.Face == nil {
		return basicfont.Face7x13
	}
	return f.Face
}

// LineHeight returns the pixel height of one line of text.
func (f Face) LineHeight() int {
	return f.face().Metrics().Height.Ceil()
}

// Measure returns the label size in pixels.
func (f Face) Measure(label string) flow.Size {
	face := f.face()
	lines := strings.Split(label, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	return flow.Size{
		Width:  width + 2*f.Inset.Horizontal,
		Height: len(lines)*f.LineHeight() + 2*f.Inset.Vertical,
	}
}

// Fixed returns the same size for every label.
type Fixed flow.Size

// Measure returns the fixed size.
func (f Fixed) Measure(string) flow.Size {
	return flow.Size(f)
}
