package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/go-drift/flowlayout/pkg/errors"
	"github.com/go-drift/flowlayout/pkg/flow"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	background   = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	contentColor = color.RGBA{R: 0xee, G: 0xf2, B: 0xf7, A: 0xff}
	borderColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	textColor    = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}

	// rowPalette colors items by row so wrap points are visible.
	rowPalette = []color.RGBA{
		{R: 0x8e, G: 0xc5, B: 0xfc, A: 0xff},
		{R: 0xa5, G: 0xe0, B: 0xa0, A: 0xff},
		{R: 0xfc, G: 0xd3, B: 0x8e, A: 0xff},
		{R: 0xe3, G: 0xa8, B: 0xf0, A: 0xff},
	}
)

// RowColor returns the fill color for items on the given row.
func RowColor(row int) color.RGBA {
	return rowPalette[row%len(rowPalette)]
}

// Image rasterizes the frame. Labels are drawn with face; nil uses
// basicfont.Face7x13.
func Image(f *Frame, face font.Face) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	size := f.Size()
	img := image.NewRGBA(image.Rect(0, 0, max(size.Width, 1), max(size.Height, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(img, toImageRect(f.ContentRect()), image.NewUniform(contentColor), image.Point{}, draw.Src)

	for _, p := range f.Placements {
		r := toImageRect(p.Rect)
		draw.Draw(img, r, image.NewUniform(RowColor(p.Row)), image.Point{}, draw.Src)
		strokeRect(img, r, borderColor)
		if label := f.Label(p); label != "" {
			drawLabel(img, face, p.Rect, label)
		}
	}
	return img
}

// PNG encodes the rasterized frame to w.
func PNG(w io.Writer, f *Frame, face font.Face) error {
	if err := png.Encode(w, Image(f, face)); err != nil {
		return errors.New("render.PNG", errors.KindRender, err)
	}
	return nil
}

func toImageRect(r flow.Rect) image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
}

func strokeRect(img draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabel centers a single-line label in r, clipped to r.
func drawLabel(img *image.RGBA, face font.Face, r flow.Rect, label string) {
	clip, ok := img.SubImage(toImageRect(r)).(*image.RGBA)
	if !ok {
		return
	}
	metrics := face.Metrics()
	textWidth := font.MeasureString(face, label)
	textHeight := metrics.Ascent + metrics.Descent

	x := fixed.I(r.Left) + (fixed.I(r.Width)-textWidth)/2
	y := fixed.I(r.Top) + (fixed.I(r.Height)-textHeight)/2 + metrics.Ascent

	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(label)
}
