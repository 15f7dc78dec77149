package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/flowlayout/pkg/errors"
	"github.com/go-drift/flowlayout/pkg/watch"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-render scenes whenever they change",
		Long: `Render each scene once, then watch the files and render a scene again
every time it is saved. Accepts the same flags as "flowlayout render".
Stop with Ctrl+C.

A scene that fails to load is reported and watched on; fix the file and
save again.`,
		Usage: "flowlayout watch [--png|--svg] [--out DIR] [--width N] <scene>...",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	written, err := renderAll(ctx, opts, res)
	for _, path := range written {
		if path != "" {
			fmt.Fprintf(stdout, "wrote %s\n", path)
		}
	}
	if err != nil {
		errors.ReportErr("watch", err)
	}

	onChange := func(path string) {
		single := *opts
		single.files = []string{path}
		written, err := renderAll(ctx, &single, res)
		if err != nil {
			errors.ReportErr("watch", err)
			return
		}
		fmt.Fprintf(stdout, "wrote %s\n", written[0])
	}

	w, err := watch.New(watch.DefaultDebounce, onChange, opts.files...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "watching %d scene(s), Ctrl+C to stop\n", len(opts.files))
	return w.Run(ctx)
}
