package flow

import (
	"math/rand"
	"reflect"
	"testing"
)

type scenario struct {
	items  []Item
	width  Spec
	height Spec
	cfg    Config
}

func randomScenario(rng *rand.Rand) scenario {
	n := rng.Intn(20)
	items := make([]Item, n)
	for i := range items {
		items[i] = &Box{
			Natural: Size{Width: 1 + rng.Intn(150), Height: 1 + rng.Intn(60)},
			Hidden:  rng.Intn(7) == 0,
		}
	}

	var width Spec
	switch rng.Intn(3) {
	case 0:
		width = Exact(rng.Intn(400))
	case 1:
		width = AtMost(rng.Intn(400))
	default:
		width = Unbounded()
	}

	return scenario{
		items:  items,
		width:  width,
		height: Unbounded(),
		cfg: Config{
			EqualSizing:       rng.Intn(2) == 0,
			HorizontalSpacing: rng.Intn(13),
			VerticalSpacing:   rng.Intn(13),
			Padding: Padding{
				Left:   rng.Intn(9),
				Top:    rng.Intn(9),
				Right:  rng.Intn(9),
				Bottom: rng.Intn(9),
			},
		},
	}
}

func visibleCount(items []Item) int {
	n := 0
	for _, item := range items {
		if item.Visible() {
			n++
		}
	}
	return n
}

// TestFrame_Properties checks the layout invariants over random inputs: item
// order is preserved, no two placements overlap, both passes agree on rows
// and height, and equal sizing gives every item the same size.
func TestFrame_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 2000; iter++ {
		sc := randomScenario(rng)
		m, placements := Frame(sc.items, sc.width, sc.height, sc.cfg)
		pad := sc.cfg.Padding

		if m.Rows > 0 && len(placements) != visibleCount(sc.items) {
			t.Fatalf("iter %d: %d placements for %d visible items", iter, len(placements), visibleCount(sc.items))
		}

		// Order preservation.
		for i := 1; i < len(placements); i++ {
			prev, cur := placements[i-1], placements[i]
			if cur.Index <= prev.Index {
				t.Fatalf("iter %d: index %d placed after %d", iter, cur.Index, prev.Index)
			}
			if cur.Row < prev.Row {
				t.Fatalf("iter %d: row went backwards at item %d", iter, cur.Index)
			}
			if cur.Row == prev.Row && cur.Rect.Left <= prev.Rect.Left {
				t.Fatalf("iter %d: left not increasing within row at item %d", iter, cur.Index)
			}
		}

		// No overlap.
		for i := range placements {
			for j := i + 1; j < len(placements); j++ {
				if placements[i].Rect.Intersects(placements[j].Rect) {
					t.Fatalf("iter %d: %v overlaps %v", iter, placements[i].Rect, placements[j].Rect)
				}
			}
		}

		// Pass consistency.
		if len(placements) > 0 {
			rowHeights := map[int]int{}
			rowTops := map[int]int{}
			rowCounts := map[int]int{}
			for _, p := range placements {
				rowHeights[p.Row] = max(rowHeights[p.Row], p.Rect.Height)
				rowTops[p.Row] = p.Rect.Top
				rowCounts[p.Row]++
			}
			if len(rowHeights) != m.Rows {
				t.Fatalf("iter %d: placement produced %d rows, measure %d", iter, len(rowHeights), m.Rows)
			}
			sum := pad.Vertical() + (m.Rows-1)*sc.cfg.VerticalSpacing
			for r := 0; r < m.Rows; r++ {
				sum += rowHeights[r]
				if r > 0 && rowTops[r] != rowTops[r-1]+rowHeights[r-1]+sc.cfg.VerticalSpacing {
					t.Fatalf("iter %d: row %d top %d does not follow row %d", iter, r, rowTops[r], r-1)
				}
			}
			if sum != m.Required.Height {
				t.Fatalf("iter %d: rows sum to %d, measured %d", iter, sum, m.Required.Height)
			}

			// Only a lone item may cross the right content edge.
			if sc.width.Bounded() {
				edge := sc.width.Size - pad.Right
				for _, p := range placements {
					if p.Rect.Right() > edge && rowCounts[p.Row] != 1 {
						t.Fatalf("iter %d: item %d overflows a shared row", iter, p.Index)
					}
				}
			}
		}

		// Equal-size uniformity.
		if sc.cfg.EqualSizing {
			for _, p := range placements {
				if p.Rect.Size() != m.ItemSize {
					t.Fatalf("iter %d: item %d is %v, uniform size %v", iter, p.Index, p.Rect.Size(), m.ItemSize)
				}
			}
		}

		// Repeated invocations agree.
		m2, placements2 := Frame(sc.items, sc.width, sc.height, sc.cfg)
		if m2 != m || !reflect.DeepEqual(placements2, placements) {
			t.Fatalf("iter %d: second frame differs", iter)
		}
	}
}

// TestLayout_MatchesFrameForBoundedEqualSizing checks that a host calling the
// standalone passes at the measured width gets the same placements as Frame.
func TestLayout_MatchesFrameForBoundedEqualSizing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		sc := randomScenario(rng)
		sc.cfg.EqualSizing = true
		sc.width = AtMost(1 + rng.Intn(400))

		m, want := Frame(sc.items, sc.width, sc.height, sc.cfg)
		got := Layout(sc.items, m.Width, sc.cfg)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("iter %d: Layout() = %v, Frame() = %v", iter, got, want)
		}
	}
}
