package cmd

import (
	"fmt"

	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "measure",
		Short: "Report the size a scene's container needs",
		Long: `Run the measurement pass on each scene and print the container size,
the row count and, in equal-size mode, the uniform item size.

Labels without explicit sizes are measured with the 7x13 pixel font.`,
		Usage: "flowlayout measure [--width N] [--mode exact|at_most|unspecified] [--equal|--no-equal] [--spacing N] <scene>...",
		Run:   runMeasure,
	})
}

func runMeasure(args []string) error {
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

	for _, path := range opts.files {
		j, err := loadJob(path, res, pixelMeasurer(res), opts)
		if err != nil {
			return err
		}
		m := flow.Measure(scene.FlowItems(j.boxes), j.width, j.height, j.cfg)
		fmt.Fprintf(stdout, "%s: %v rows=%d required=%v", j.name(), m.Size(), m.Rows, m.Required)
		if j.cfg.EqualSizing {
			fmt.Fprintf(stdout, " item=%v", m.ItemSize)
		}
		fmt.Fprintln(stdout)
	}
	return nil
}
