package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/flowlayout/cmd/flowlayout/internal/config"
	"github.com/go-drift/flowlayout/pkg/errors"
	"github.com/go-drift/flowlayout/pkg/render"
	"golang.org/x/sync/errgroup"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw scenes as PNG or SVG files",
		Long: `Lay out each scene and draw it. Items are filled with one color per row
and labelled. Scenes render concurrently, at most --parallel at a time
(default from flowlayout.yaml, else 4).

Each scene is written to <out>/<scene file name>.<format>. The output
directory defaults to output.dir in flowlayout.yaml, then FLOWLAYOUT_OUTPUT,
then the working directory.`,
		Usage: "flowlayout render [--png|--svg|--format F] [--out DIR] [--parallel N] [--width N] <scene>...",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := opts.requireFiles(1, 0); err != nil {
		return err
	}
	res, err := resolveConfig()
	if err != nil {
		return err
	}

	written, err := renderAll(context.Background(), opts, res)
	for _, path := range written {
		if path != "" {
			fmt.Fprintf(stdout, "wrote %s\n", path)
		}
	}
	return err
}

// renderAll renders every scene in opts.files and returns the output paths
// in input order. Paths of scenes that did not render are empty.
func renderAll(ctx context.Context, opts *options, res *config.Resolved) ([]string, error) {
	format := res.Format
	if opts.format != "" {
		format = strings.ToLower(opts.format)
	}
	if format != "png" && format != "svg" {
		return nil, fmt.Errorf("unsupported format %q (use png or svg)", format)
	}
	outDir := res.Output
	if opts.outDir != "" {
		outDir = opts.outDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.WithPath("render", errors.KindRender, outDir, err)
	}
	parallel := res.Parallel
	if opts.parallel > 0 {
		parallel = opts.parallel
	}

	written := make([]string, len(opts.files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, path := range opts.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := renderOne(path, outDir, format, res, opts)
			if err != nil {
				return err
			}
			written[i] = out
			return nil
		})
	}
	return written, g.Wait()
}

// renderOne lays out the scene at path and writes it into outDir.
func renderOne(path, outDir, format string, res *config.Resolved, opts *options) (string, error) {
	j, err := loadJob(path, res, pixelMeasurer(res), opts)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(outDir, base+"."+format)

	f := j.frame()
	err = writeOutput(out, func(w io.Writer) error {
		if format == "svg" {
			return render.SVG(w, f)
		}
		return render.PNG(w, f, nil)
	})
	if err != nil {
		return "", errors.WithPath("render", errors.KindRender, out, err)
	}
	return out, nil
}

// writeOutput creates path and fills it through a buffered writer. A failed
// write removes the partial file.
func writeOutput(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	err = write(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
