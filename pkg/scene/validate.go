package scene

import (
	"github.com/go-drift/flowlayout/pkg/errors"
	"github.com/go-drift/flowlayout/pkg/flow"
	"golang.org/x/mod/semver"
)

// SupportedVersion is the newest scene format this package reads. Documents
// with the same major version and an equal or older minor version load.
const SupportedVersion = "v1.1.0"

// Validate checks the scene for values the layout cannot accept. All checks
// run; failures are collected into an [errors.ValidationError].
func (s *Scene) Validate() error {
	var v errors.ValidationError

	if s.Version != "" {
		switch {
		case !semver.IsValid(s.Version):
			v.Add("version %q is not a valid semantic version", s.Version)
		case semver.Major(s.Version) != semver.Major(SupportedVersion):
			v.Add("version %q has unsupported major version (want %s)", s.Version, semver.Major(SupportedVersion))
		case semver.Compare(s.Version, SupportedVersion) > 0:
			v.Add("version %q is newer than supported %s", s.Version, SupportedVersion)
		}
	}

	widthMode, err := flow.ParseMode(s.Container.WidthMode)
	if err != nil {
		v.Add("container.width_mode: %v", err)
	}
	if _, err := flow.ParseMode(s.Container.HeightMode); err != nil {
		v.Add("container.height_mode: %v", err)
	}
	if s.Container.Width < 0 {
		v.Add("container.width must not be negative")
	}
	if s.Container.Height < 0 {
		v.Add("container.height must not be negative")
	}
	if err == nil && widthMode != flow.ModeUnspecified && s.Container.Width == 0 {
		v.Add("container.width is required when width_mode is %s", widthMode)
	}

	if sp := s.Layout.HorizontalSpacing; sp != nil && *sp < 0 {
		v.Add("layout.horizontal_spacing must not be negative")
	}
	if sp := s.Layout.VerticalSpacing; sp != nil && *sp < 0 {
		v.Add("layout.vertical_spacing must not be negative")
	}
	p := s.Layout.Padding
	if p.All < 0 || p.Left < 0 || p.Top < 0 || p.Right < 0 || p.Bottom < 0 {
		v.Add("layout.padding must not be negative")
	}

	for i, it := range s.Items {
		if it.Width < 0 {
			v.Add("items[%d].width must not be negative", i)
		}
		if it.Height < 0 {
			v.Add("items[%d].height must not be negative", i)
		}
	}

	return v.Err()
}
