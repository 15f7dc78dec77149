package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/go-drift/flowlayout/pkg/errors"
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG writes the frame as an SVG document.
func SVG(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	size := f.Size()

	canvas := svg.New(bw)
	canvas.Start(size.Width, size.Height)
	canvas.Rect(0, 0, size.Width, size.Height, "fill:"+hex(background))
	content := f.ContentRect()
	canvas.Rect(content.Left, content.Top, content.Width, content.Height, "fill:"+hex(contentColor))

	for _, p := range f.Placements {
		r := p.Rect
		canvas.Group(fmt.Sprintf(`id="item-%d"`, p.Index), fmt.Sprintf(`data-row="%d"`, p.Row))
		canvas.Rect(r.Left, r.Top, r.Width, r.Height,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", hex(RowColor(p.Row)), hex(borderColor)))
		if label := f.Label(p); label != "" {
			canvas.Text(r.Left+r.Width/2, r.Top+r.Height/2, label,
				"text-anchor:middle;dominant-baseline:central;font-family:monospace;font-size:12px;fill:"+hex(textColor))
		}
		canvas.Gend()
	}
	canvas.End()

	if err := bw.Flush(); err != nil {
		return errors.New("render.SVG", errors.KindRender, err)
	}
	return nil
}
