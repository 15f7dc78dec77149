// Package stats summarizes how well a flow layout fills its rows.
package stats

import (
	"fmt"

	"github.com/go-drift/flowlayout/pkg/flow"
	"gonum.org/v1/gonum/stat"
)

// Row describes one packed row.
type Row struct {
	Index  int
	Items  int
	Width  int // content pixels spanned, spacing included
	Height int
	// Fill is Width divided by the content width. It exceeds 1 for a row
	// holding a single oversized item.
	Fill float64
}

// Summary aggregates row fill across a layout.
type Summary struct {
	Rows       []Row
	MeanFill   float64
	StdDevFill float64
	MinFill    float64
	Overflows  int
}

// Rows groups placements into rows. Placements must be in the order
// [flow.Layout] returns them.
func Rows(placements []flow.Placement, contentWidth int) []Row {
	var rows []Row
	var left int
	for _, p := range placements {
		if len(rows) == 0 || rows[len(rows)-1].Index != p.Row {
			rows = append(rows, Row{Index: p.Row})
			left = p.Rect.Left
		}
		r := &rows[len(rows)-1]
		r.Items++
		r.Width = p.Rect.Right() - left
		r.Height = max(r.Height, p.Rect.Height)
	}
	for i := range rows {
		if contentWidth > 0 {
			rows[i].Fill = float64(rows[i].Width) / float64(contentWidth)
		}
	}
	return rows
}

// Summarize computes row statistics for a layout whose content box is
// contentWidth pixels wide. Rows holding a lone item wider than the content
// box count as overflows and are left out of the fill statistics.
func Summarize(placements []flow.Placement, contentWidth int) Summary {
	rows := Rows(placements, contentWidth)
	s := Summary{Rows: rows}

	fills := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.Width > contentWidth {
			s.Overflows++
			continue
		}
		fills = append(fills, r.Fill)
	}
	switch len(fills) {
	case 0:
	case 1:
		s.MeanFill = fills[0]
		s.MinFill = fills[0]
	default:
		s.MeanFill, s.StdDevFill = stat.MeanStdDev(fills, nil)
		s.MinFill = fills[0]
		for _, f := range fills[1:] {
			s.MinFill = min(s.MinFill, f)
		}
	}
	return s
}

// String returns a one-line report.
func (s Summary) String() string {
	return fmt.Sprintf("rows=%d fill mean=%.2f sd=%.2f min=%.2f overflows=%d",
		len(s.Rows), s.MeanFill, s.StdDevFill, s.MinFill, s.Overflows)
}
