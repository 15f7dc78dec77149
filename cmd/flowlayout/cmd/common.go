package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/flowlayout/cmd/flowlayout/internal/config"
	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/measure"
	"github.com/go-drift/flowlayout/pkg/render"
	"github.com/go-drift/flowlayout/pkg/scene"
)

// options holds the flags shared by the scene commands.
type options struct {
	width     int
	widthMode string
	equal     *bool
	hspace    *int
	vspace    *int
	format    string
	outDir    string
	parallel  int
	force     bool
	files     []string
}

// parseOptions reads flags and positional scene paths. Flags take their
// value either as "--flag=value" or as the following argument.
func parseOptions(args []string) (*options, error) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			opts.files = append(opts.files, arg)
			continue
		}

		name, value, inline := splitFlag(arg)
		if !inline {
			name = arg
		}
		next := func() (string, error) {
			if inline {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}
		nextInt := func() (int, error) {
			v, err := next()
			if err != nil {
				return 0, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return 0, fmt.Errorf("%s: %q is not a non-negative integer", name, v)
			}
			return n, nil
		}

		var err error
		switch name {
		case "--width":
			opts.width, err = nextInt()
		case "--mode":
			opts.widthMode, err = next()
		case "--equal":
			t := true
			opts.equal = &t
		case "--no-equal":
			f := false
			opts.equal = &f
		case "--spacing":
			var n int
			n, err = nextInt()
			opts.hspace, opts.vspace = &n, &n
		case "--format":
			opts.format, err = next()
		case "--png":
			opts.format = "png"
		case "--svg":
			opts.format = "svg"
		case "--out":
			opts.outDir, err = next()
		case "--parallel":
			opts.parallel, err = nextInt()
		case "--force":
			opts.force = true
		default:
			return nil, fmt.Errorf("unknown flag: %s", name)
		}
		if err != nil {
			return nil, err
		}
	}
	if opts.widthMode != "" {
		if _, err := flow.ParseMode(opts.widthMode); err != nil {
			return nil, fmt.Errorf("--mode: %w", err)
		}
	}
	return opts, nil
}

// requireFiles checks the number of scene paths given.
func (o *options) requireFiles(least, most int) error {
	n := len(o.files)
	switch {
	case n < least && least == 1:
		return fmt.Errorf("scene file required")
	case n < least:
		return fmt.Errorf("at least %d scene files required", least)
	case most > 0 && n > most:
		return fmt.Errorf("expected at most %d scene file(s), got %d", most, n)
	}
	return nil
}

// resolveConfig loads flowlayout.yaml from the working directory.
func resolveConfig() (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(dir)
}

// pixelMeasurer sizes labels for PNG and SVG output.
func pixelMeasurer(res *config.Resolved) measure.Measurer {
	face := measure.DefaultFace()
	face.Inset = res.Inset
	return face
}

// cellMeasurer sizes labels for terminal output: one cell of space on each
// side, which the ASCII renderer fills with the border.
func cellMeasurer() measure.Measurer {
	return measure.Cells{Inset: measure.Inset{Horizontal: 1, Vertical: 1}}
}

// job is one scene ready to lay out.
type job struct {
	path   string
	scene  *scene.Scene
	boxes  []*flow.Box
	cfg    flow.Config
	width  flow.Spec
	height flow.Spec
}

// loadJob reads the scene at path and applies config defaults and flag
// overrides.
func loadJob(path string, res *config.Resolved, m measure.Measurer, opts *options) (*job, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	cfg := s.FlowConfig(res.Defaults)
	width, height := s.Specs()

	if opts.equal != nil {
		cfg.EqualSizing = *opts.equal
	}
	if opts.hspace != nil {
		cfg.HorizontalSpacing = *opts.hspace
	}
	if opts.vspace != nil {
		cfg.VerticalSpacing = *opts.vspace
	}
	if opts.width > 0 {
		width = flow.Exact(opts.width)
	}
	if opts.widthMode != "" {
		mode, _ := flow.ParseMode(opts.widthMode)
		width.Mode = mode
	}

	return &job{
		path:   path,
		scene:  s,
		boxes:  s.Boxes(m),
		cfg:    cfg,
		width:  width,
		height: height,
	}, nil
}

func (j *job) frame() *render.Frame {
	return render.NewFrame(j.boxes, j.width, j.height, j.cfg)
}

// name returns the scene name, falling back to the file name.
func (j *job) name() string {
	if j.scene.Name != "" {
		return j.scene.Name
	}
	return strings.TrimSuffix(filepath.Base(j.path), filepath.Ext(j.path))
}
