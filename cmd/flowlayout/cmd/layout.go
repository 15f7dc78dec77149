package cmd

import (
	"github.com/go-drift/flowlayout/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print a scene's placements as JSON",
		Long: `Run both layout passes on a scene and print the container size and every
placed item as JSON. Hidden items are left out; each placement keeps the
index of its item in the scene.`,
		Usage: "flowlayout layout [--width N] [--mode exact|at_most|unspecified] [--equal|--no-equal] [--spacing N] <scene>",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
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
	j, err := loadJob(opts.files[0], res, pixelMeasurer(res), opts)
	if err != nil {
		return err
	}
	return render.JSON(stdout, j.frame())
}
