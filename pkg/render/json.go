package render

import (
	"encoding/json"
	"io"

	"github.com/go-drift/flowlayout/pkg/errors"
)

// Document is the serialized form of a Frame.
type Document struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Rows       int            `json:"rows"`
	ItemSize   [2]int         `json:"itemSize"`
	Config     string         `json:"config"`
	Placements []DocPlacement `json:"placements"`
}

// DocPlacement is one placed item. Rect is left, top, width, height.
type DocPlacement struct {
	Index int    `json:"index"`
	Label string `json:"label,omitempty"`
	Row   int    `json:"row"`
	Rect  [4]int `json:"rect"`
}

// NewDocument converts f to its serialized form.
func NewDocument(f *Frame) *Document {
	size := f.Size()
	doc := &Document{
		Width:      size.Width,
		Height:     size.Height,
		Rows:       f.Measurement.Rows,
		ItemSize:   [2]int{f.Measurement.ItemSize.Width, f.Measurement.ItemSize.Height},
		Config:     f.Config.String(),
		Placements: make([]DocPlacement, len(f.Placements)),
	}
	for i, p := range f.Placements {
		doc.Placements[i] = DocPlacement{
			Index: p.Index,
			Label: f.Label(p),
			Row:   p.Row,
			Rect:  [4]int{p.Rect.Left, p.Rect.Top, p.Rect.Width, p.Rect.Height},
		}
	}
	return doc
}

// Marshal returns the indented JSON encoding of d, newline terminated.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// JSON writes the frame as an indented JSON document.
func JSON(w io.Writer, f *Frame) error {
	data, err := NewDocument(f).Marshal()
	if err != nil {
		return errors.New("render.JSON", errors.KindRender, err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.New("render.JSON", errors.KindRender, err)
	}
	return nil
}
