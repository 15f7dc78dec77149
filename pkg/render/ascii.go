package render

import (
	"strings"

	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/mattn/go-runewidth"
)

// wideTail marks the cell covered by the right half of a wide rune.
const wideTail = -1

// ASCII draws the frame into a character grid, one cell per layout unit.
// Items at least 2 wide and 3 tall get a border; the label sits on the
// middle row.
func ASCII(f *Frame) string {
	size := f.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return ""
	}
	grid := make([][]rune, size.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", size.Width))
	}
	set := func(x, y int, r rune) {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] = r
		}
	}

	for _, p := range f.Placements {
		r := p.Rect
		inner := r
		if r.Width >= 2 && r.Height >= 3 {
			for x := r.Left; x < r.Right(); x++ {
				set(x, r.Top, '-')
				set(x, r.Bottom()-1, '-')
			}
			for y := r.Top; y < r.Bottom(); y++ {
				set(r.Left, y, '|')
				set(r.Right()-1, y, '|')
			}
			set(r.Left, r.Top, '+')
			set(r.Right()-1, r.Top, '+')
			set(r.Left, r.Bottom()-1, '+')
			set(r.Right()-1, r.Bottom()-1, '+')
			inner = flow.RectFromLTWH(r.Left+1, r.Top+1, r.Width-2, r.Height-2)
		}

		label := runewidth.Truncate(f.Label(p), inner.Width, "")
		x := inner.Left + (inner.Width-runewidth.StringWidth(label))/2
		y := inner.Top + inner.Height/2
		for _, ch := range label {
			set(x, y, ch)
			if runewidth.RuneWidth(ch) == 2 {
				set(x+1, y, wideTail)
				x++
			}
			x++
		}
	}

	var b strings.Builder
	for y, row := range grid {
		for _, ch := range row {
			if ch != wideTail {
				b.WriteRune(ch)
			}
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
