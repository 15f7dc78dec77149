// Package scene reads and writes scene documents: a container constraint, a
// layout configuration and a list of items, stored as YAML or TOML.
package scene

import (
	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/measure"
)

// Scene is one layout problem.
type Scene struct {
	// Version is the document format version, a semantic version with a
	// leading "v". Empty means SupportedVersion.
	Version   string    `yaml:"version,omitempty" toml:"version,omitempty"`
	Name      string    `yaml:"name,omitempty" toml:"name,omitempty"`
	Container Container `yaml:"container" toml:"container"`
	Layout    Layout    `yaml:"layout,omitempty" toml:"layout,omitempty"`
	Items     []Item    `yaml:"items" toml:"items"`
}

// Container describes the host's constraints on the container. A positive
// Width with no WidthMode is treated as exact.
type Container struct {
	Width      int    `yaml:"width,omitempty" toml:"width,omitempty"`
	WidthMode  string `yaml:"width_mode,omitempty" toml:"width_mode,omitempty"`
	Height     int    `yaml:"height,omitempty" toml:"height,omitempty"`
	HeightMode string `yaml:"height_mode,omitempty" toml:"height_mode,omitempty"`
}

// Layout holds the flow configuration. Nil fields fall back to the defaults
// passed to [Scene.FlowConfig].
type Layout struct {
	EqualSizing       *bool   `yaml:"equal_sizing,omitempty" toml:"equal_sizing,omitempty"`
	HorizontalSpacing *int    `yaml:"horizontal_spacing,omitempty" toml:"horizontal_spacing,omitempty"`
	VerticalSpacing   *int    `yaml:"vertical_spacing,omitempty" toml:"vertical_spacing,omitempty"`
	Padding           Padding `yaml:"padding,omitempty" toml:"padding,omitempty"`
}

// Padding sets every side with All, then overrides individual sides that are
// non-zero.
type Padding struct {
	All    int `yaml:"all,omitempty" toml:"all,omitempty"`
	Left   int `yaml:"left,omitempty" toml:"left,omitempty"`
	Top    int `yaml:"top,omitempty" toml:"top,omitempty"`
	Right  int `yaml:"right,omitempty" toml:"right,omitempty"`
	Bottom int `yaml:"bottom,omitempty" toml:"bottom,omitempty"`
}

// Item is one child. A zero Width or Height is measured from Label; an item
// without a label keeps its sizes as given, zero included.
type Item struct {
	Label  string `yaml:"label,omitempty" toml:"label,omitempty"`
	Width  int    `yaml:"width,omitempty" toml:"width,omitempty"`
	Height int    `yaml:"height,omitempty" toml:"height,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

func (p Padding) resolve() flow.Padding {
	out := flow.PaddingAll(p.All)
	if p.Left != 0 {
		out.Left = p.Left
	}
	if p.Top != 0 {
		out.Top = p.Top
	}
	if p.Right != 0 {
		out.Right = p.Right
	}
	if p.Bottom != 0 {
		out.Bottom = p.Bottom
	}
	return out
}

// FlowConfig returns the layout configuration, taking unset fields from
// defaults. Padding always comes from the scene.
func (s *Scene) FlowConfig(defaults flow.Config) flow.Config {
	cfg := defaults
	if s.Layout.EqualSizing != nil {
		cfg.EqualSizing = *s.Layout.EqualSizing
	}
	if s.Layout.HorizontalSpacing != nil {
		cfg.HorizontalSpacing = *s.Layout.HorizontalSpacing
	}
	if s.Layout.VerticalSpacing != nil {
		cfg.VerticalSpacing = *s.Layout.VerticalSpacing
	}
	cfg.Padding = s.Layout.Padding.resolve()
	return cfg
}

// Specs returns the width and height constraints. Modes are assumed valid;
// [Scene.Validate] reports bad ones.
func (s *Scene) Specs() (width, height flow.Spec) {
	wm, _ := flow.ParseMode(s.Container.WidthMode)
	hm, _ := flow.ParseMode(s.Container.HeightMode)
	if s.Container.WidthMode == "" && s.Container.Width > 0 {
		wm = flow.ModeExactly
	}
	return flow.Spec{Size: s.Container.Width, Mode: wm}, flow.Spec{Size: s.Container.Height, Mode: hm}
}

// Boxes converts the items to flow boxes, measuring labels with m where an
// explicit size is missing.
func (s *Scene) Boxes(m measure.Measurer) []*flow.Box {
	boxes := make([]*flow.Box, len(s.Items))
	for i, it := range s.Items {
		size := flow.Size{Width: it.Width, Height: it.Height}
		if (size.Width == 0 || size.Height == 0) && it.Label != "" && m != nil {
			measured := m.Measure(it.Label)
			if size.Width == 0 {
				size.Width = measured.Width
			}
			if size.Height == 0 {
				size.Height = measured.Height
			}
		}
		boxes[i] = &flow.Box{Label: it.Label, Natural: size, Hidden: it.Hidden}
	}
	return boxes
}

// FlowItems returns boxes as the flow.Item slice the packer consumes.
func FlowItems(boxes []*flow.Box) []flow.Item {
	items := make([]flow.Item, len(boxes))
	for i, b := range boxes {
		items[i] = b
	}
	return items
}
