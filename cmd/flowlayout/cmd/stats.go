package cmd

import (
	"fmt"

	"github.com/go-drift/flowlayout/pkg/stats"
)

func init() {
	RegisterCommand(&Command{
		Name:  "stats",
		Short: "Show how well each row is filled",
		Long: `Lay out each scene and print, per row, the item count, the width the row
spans and its fill ratio against the content width, followed by the mean,
standard deviation and minimum fill. Rows holding a single item wider than
the container are counted as overflows.`,
		Usage: "flowlayout stats [--width N] [--equal|--no-equal] [--spacing N] <scene>...",
		Run:   runStats,
	})
}

func runStats(args []string) error {
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
		f := j.frame()
		summary := stats.Summarize(f.Placements, f.ContentRect().Width)

		fmt.Fprintf(stdout, "%s (%v)\n", j.name(), f.Size())
		for _, row := range summary.Rows {
			fmt.Fprintf(stdout, "  row %-3d items=%-3d width=%-5d height=%-5d fill=%.2f\n",
				row.Index, row.Items, row.Width, row.Height, row.Fill)
		}
		fmt.Fprintf(stdout, "  %s\n", summary)
	}
	return nil
}
