// Package flow arranges rectangular items into left-to-right rows that wrap
// when the next item would overflow the available width.
//
// Layout is a two-pass process. [Measure] resolves each item's effective size
// and computes the size the container needs; the host then settles on a final
// container width and calls [Layout] to place every visible item. [Frame] runs
// both passes back to back the way a host relayout does.
//
// # Sizing
//
// With [Config].EqualSizing unset, every item keeps its natural size. With it
// set, every visible item is laid out at one uniform size: the height of the
// tallest item, and a width stretched so that the number of items that fit
// one row at their natural maximum width fill that row edge to edge.
//
// # Wrapping
//
// Items keep their input order. An item wider than the content box is placed
// alone on its own row and allowed to overflow; it is never shrunk or dropped.
// Hidden items take no space and never break a row.
//
// Example:
//
//	items := []flow.Item{
//	    flow.NewBox(100, 40),
//	    flow.NewBox(100, 40),
//	    flow.NewBox(100, 40),
//	    flow.NewBox(100, 40),
//	}
//	cfg := flow.Config{HorizontalSpacing: 10, VerticalSpacing: 8}
//	m, placements := flow.Frame(items, flow.Exact(320), flow.Unbounded(), cfg)
//	// m.Height == 88, placements[3].Row == 1
package flow
