package stats

import (
	"math"
	"testing"

	"github.com/go-drift/flowlayout/pkg/flow"
)

func items(sizes ...flow.Size) []flow.Item {
	out := make([]flow.Item, len(sizes))
	for i, s := range sizes {
		out[i] = &flow.Box{Natural: s}
	}
	return out
}

func TestRows(t *testing.T) {
	in := items(
		flow.Size{Width: 100, Height: 40},
		flow.Size{Width: 100, Height: 30},
		flow.Size{Width: 100, Height: 20},
		flow.Size{Width: 100, Height: 10},
	)
	cfg := flow.Config{HorizontalSpacing: 10, VerticalSpacing: 8, Padding: flow.PaddingAll(4)}
	placements := flow.Layout(in, 328, cfg)

	rows := Rows(placements, 320)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Items != 3 || rows[0].Width != 320 || rows[0].Height != 40 || rows[0].Fill != 1 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Items != 1 || rows[1].Width != 100 || rows[1].Height != 10 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if math.Abs(rows[1].Fill-100.0/320.0) > 1e-9 {
		t.Errorf("row 1 fill = %v", rows[1].Fill)
	}
}

func TestSummarize(t *testing.T) {
	in := items(
		flow.Size{Width: 50, Height: 10},
		flow.Size{Width: 50, Height: 10},
		flow.Size{Width: 150, Height: 10},
		flow.Size{Width: 25, Height: 10},
	)
	_, placements := flow.Frame(in, flow.Exact(100), flow.Unbounded(), flow.Config{})

	s := Summarize(placements, 100)
	if len(s.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(s.Rows))
	}
	if s.Overflows != 1 {
		t.Errorf("Overflows = %d, want 1", s.Overflows)
	}
	// Fills 1.0 and 0.25: mean 0.625, sample sd sqrt(0.28125).
	if math.Abs(s.MeanFill-0.625) > 1e-9 {
		t.Errorf("MeanFill = %v, want 0.625", s.MeanFill)
	}
	if math.Abs(s.StdDevFill-math.Sqrt(0.28125)) > 1e-9 {
		t.Errorf("StdDevFill = %v", s.StdDevFill)
	}
	if s.MinFill != 0.25 {
		t.Errorf("MinFill = %v, want 0.25", s.MinFill)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, 100)
	if len(s.Rows) != 0 || s.MeanFill != 0 || s.Overflows != 0 {
		t.Errorf("Summarize(nil) = %+v", s)
	}
	if s.String() == "" {
		t.Error("expected a report line")
	}
}
