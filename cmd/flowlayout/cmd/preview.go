package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-drift/flowlayout/pkg/preview"
	"github.com/go-drift/flowlayout/pkg/watch"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Explore a scene interactively in the terminal",
		Long: `Open a full-screen terminal view of a scene. The container is as wide as
the window; resize the terminal to watch the items rewrap. Saving the scene
file reloads it.

Keys:
  e      Toggle equal sizing
  + / -  Grow or shrink both spacings by one cell
  q      Quit`,
		Usage: "flowlayout preview [--equal|--no-equal] [--spacing N] <scene>",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := opts.requireFiles(1, 1); err != nil {
		return err
	}
	res, err := resolveConfig()
	if err != nil {
		return err
	}
	j, err := loadJob(opts.files[0], res, cellMeasurer(), opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(preview.New(j.name(), j.boxes, j.cfg), tea.WithAltScreen())

	w, err := watch.New(watch.DefaultDebounce, func(path string) {
		reloaded, err := loadJob(path, res, cellMeasurer(), opts)
		if err != nil {
			p.Send(preview.ReloadErrorMsg{Err: err})
			return
		}
		p.Send(preview.ReplaceMsg{Boxes: reloaded.boxes, Config: reloaded.cfg})
	}, j.path)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	_, err = p.Run()
	return err
}
