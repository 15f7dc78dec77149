// Package config loads the optional flowlayout.yaml project settings.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/flowlayout/pkg/errors"
	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/measure"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "flowlayout.yaml"

// Environment overrides, applied after the file.
const (
	EnvDensity = "FLOWLAYOUT_DENSITY"
	EnvOutput  = "FLOWLAYOUT_OUTPUT"
)

// Config represents the optional flowlayout.yaml configuration.
type Config struct {
	Density float64      `yaml:"density,omitempty"`
	Layout  LayoutConfig `yaml:"layout,omitempty"`
	Output  OutputConfig `yaml:"output,omitempty"`
	Label   LabelConfig  `yaml:"label,omitempty"`
}

// LayoutConfig holds the defaults for scenes that leave layout fields unset.
// Spacings are density-independent pixels.
type LayoutConfig struct {
	EqualSizing         *bool `yaml:"equal_sizing,omitempty"`
	HorizontalSpacingDP *int  `yaml:"horizontal_spacing_dp,omitempty"`
	VerticalSpacingDP   *int  `yaml:"vertical_spacing_dp,omitempty"`
}

// OutputConfig controls where and how render writes files.
type OutputConfig struct {
	Dir      string `yaml:"dir,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Parallel int    `yaml:"parallel,omitempty"`
}

// LabelConfig sets the space around measured label text, in pixels.
type LabelConfig struct {
	InsetX *int `yaml:"inset_x,omitempty"`
	InsetY *int `yaml:"inset_y,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root     string
	Path     string
	Density  float64
	Defaults flow.Config
	Inset    measure.Inset
	Output   string
	Format   string
	Parallel int
}

// Defaults applied when flowlayout.yaml leaves a field unset.
const (
	DefaultDensity   = 1.0
	DefaultSpacingDP = 4
	DefaultFormat    = "png"
	DefaultParallel  = 4
)

// DPToPX converts density-independent pixels to device pixels, truncating
// toward zero.
func DPToPX(density float64, dp int) int {
	return int(density * float64(dp))
}

// LoadOptional reads flowlayout.yaml from dir if present. The returned path
// is empty when no file exists.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", errors.WithPath("config.Load", errors.KindConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", errors.WithPath("config.Load", errors.KindParsing, path,
			&errors.ParseError{Format: "yaml", Err: err})
	}
	return &cfg, path, nil
}

// Resolve loads flowlayout.yaml (if present), applies environment overrides,
// validates the result and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, errors.WithPath("config.Resolve", errors.KindValidation, path, err)
	}

	density := cfg.Density
	if density == 0 {
		density = DefaultDensity
	}

	equal := true
	if cfg.Layout.EqualSizing != nil {
		equal = *cfg.Layout.EqualSizing
	}
	hs, vs := DefaultSpacingDP, DefaultSpacingDP
	if cfg.Layout.HorizontalSpacingDP != nil {
		hs = *cfg.Layout.HorizontalSpacingDP
	}
	if cfg.Layout.VerticalSpacingDP != nil {
		vs = *cfg.Layout.VerticalSpacingDP
	}

	inset := measure.DefaultFace().Inset
	if cfg.Label.InsetX != nil {
		inset.Horizontal = *cfg.Label.InsetX
	}
	if cfg.Label.InsetY != nil {
		inset.Vertical = *cfg.Label.InsetY
	}

	out := strings.TrimSpace(cfg.Output.Dir)
	if out == "" {
		out = dir
	} else if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	format := strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if format == "" {
		format = DefaultFormat
	}
	parallel := cfg.Output.Parallel
	if parallel == 0 {
		parallel = DefaultParallel
	}

	return &Resolved{
		Root:    dir,
		Path:    path,
		Density: density,
		Defaults: flow.Config{
			EqualSizing:       equal,
			HorizontalSpacing: DPToPX(density, hs),
			VerticalSpacing:   DPToPX(density, vs),
		},
		Inset:    inset,
		Output:   out,
		Format:   format,
		Parallel: parallel,
	}, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvDensity)); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("config.Resolve", errors.KindConfig,
				fmt.Errorf("%s=%q is not a number", EnvDensity, v))
		}
		cfg.Density = d
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output.Dir = v
	}
	return nil
}

func validate(cfg *Config) error {
	var v errors.ValidationError
	if cfg.Density < 0 {
		v.Add("density must not be negative")
	}
	if sp := cfg.Layout.HorizontalSpacingDP; sp != nil && *sp < 0 {
		v.Add("layout.horizontal_spacing_dp must not be negative")
	}
	if sp := cfg.Layout.VerticalSpacingDP; sp != nil && *sp < 0 {
		v.Add("layout.vertical_spacing_dp must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Output.Format)) {
	case "", "png", "svg":
	default:
		v.Add("output.format %q must be png or svg", cfg.Output.Format)
	}
	if cfg.Output.Parallel < 0 {
		v.Add("output.parallel must not be negative")
	}
	if x := cfg.Label.InsetX; x != nil && *x < 0 {
		v.Add("label.inset_x must not be negative")
	}
	if y := cfg.Label.InsetY; y != nil && *y < 0 {
		v.Add("label.inset_y must not be negative")
	}
	return v.Err()
}
