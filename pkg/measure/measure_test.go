package measure

import (
	"testing"

	"github.com/go-drift/flowlayout/pkg/flow"
	"golang.org/x/image/font/basicfont"
)

func TestCells_Measure(t *testing.T) {
	tests := []struct {
		name  string
		label string
		inset Inset
		want  flow.Size
	}{
		{"ascii", "Go", Inset{}, flow.Size{Width: 2, Height: 1}},
		{"inset", "Rust", Inset{Horizontal: 1, Vertical: 1}, flow.Size{Width: 6, Height: 3}},
		{"wide runes", "日本", Inset{}, flow.Size{Width: 4, Height: 1}},
		{"multi-line", "a\nlonger\nb", Inset{}, flow.Size{Width: 6, Height: 3}},
		{"empty", "", Inset{}, flow.Size{Width: 0, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cells{Inset: tt.inset}.Measure(tt.label)
			if got != tt.want {
				t.Errorf("Measure(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestFace_Measure(t *testing.T) {
	// basicfont.Face7x13 advances every glyph by 7 pixels.
	f := Face{Face: basicfont.Face7x13}
	if got := f.Measure("abcd"); got.Width != 28 {
		t.Errorf("width = %d, want 28", got.Width)
	}
	if got := f.Measure("a\nb"); got.Height != 2*f.LineHeight() {
		t.Errorf("height = %d, want %d", got.Height, 2*f.LineHeight())
	}

	inset := DefaultFace()
	plain := f.Measure("Go")
	padded := inset.Measure("Go")
	if padded.Width != plain.Width+16 || padded.Height != plain.Height+12 {
		t.Errorf("DefaultFace().Measure = %v, want %v plus inset", padded, plain)
	}
}

func TestFace_NilFaceFallsBack(t *testing.T) {
	if got := (Face{}).Measure("xyz"); got.Width != 21 {
		t.Errorf("width = %d, want 21", got.Width)
	}
}

func TestFixed_Measure(t *testing.T) {
	m := Fixed(flow.Size{Width: 40, Height: 12})
	if got := m.Measure("anything"); got != (flow.Size{Width: 40, Height: 12}) {
		t.Errorf("Measure = %v", got)
	}
}
