package flow

import "fmt"

// Mode says how the host constrains one dimension of the container.
type Mode int

const (
	// ModeUnspecified leaves the dimension unbounded. An unbounded width never
	// wraps.
	ModeUnspecified Mode = iota
	// ModeAtMost bounds the dimension. Width wraps at the bound; the reported
	// size is whatever the content needs.
	ModeAtMost
	// ModeExactly fixes the dimension. Width wraps at the bound and the
	// reported size is the bound itself.
	ModeExactly
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnspecified:
		return "unspecified"
	case ModeAtMost:
		return "at_most"
	case ModeExactly:
		return "exactly"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names produced by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "unspecified", "unbounded":
		return ModeUnspecified, nil
	case "at_most", "atmost":
		return ModeAtMost, nil
	case "exactly", "exact":
		return ModeExactly, nil
	default:
		return ModeUnspecified, fmt.Errorf("unknown measure mode %q", s)
	}
}

// Spec is the host's constraint on one container dimension. Size includes
// padding.
type Spec struct {
	Size int
	Mode Mode
}

// Exact returns a spec that fixes the dimension to size.
func Exact(size int) Spec {
	return Spec{Size: size, Mode: ModeExactly}
}

// AtMost returns a spec that bounds the dimension by size.
func AtMost(size int) Spec {
	return Spec{Size: size, Mode: ModeAtMost}
}

// Unbounded returns a spec with no bound.
func Unbounded() Spec {
	return Spec{Mode: ModeUnspecified}
}

// Bounded reports whether the spec carries a usable bound.
func (s Spec) Bounded() bool {
	return s.Mode != ModeUnspecified
}

// Resolve picks the reported size for this dimension: the bound itself when
// the mode is exact, otherwise the computed size.
func (s Spec) Resolve(computed int) int {
	if s.Mode == ModeExactly {
		return s.Size
	}
	return computed
}

// String returns a human-readable representation of the spec.
func (s Spec) String() string {
	if s.Mode == ModeUnspecified {
		return "unspecified"
	}
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}
