package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/render"
	"golang.org/x/term"
)

func init() {
	RegisterCommand(&Command{
		Name:  "ascii",
		Short: "Draw a scene in the terminal",
		Long: `Lay out a scene in terminal cells and print it as text. One layout unit
is one cell, so explicit item sizes and spacings are read as cells. Labels
without explicit sizes get one cell of border on every side.

Without --width the container is as wide as the terminal, falling back to
the scene's own width when output is not a terminal.`,
		Usage: "flowlayout ascii [--width N] [--equal|--no-equal] [--spacing N] <scene>",
		Run:   runASCII,
	})
}

// terminalWidth returns the width of the terminal on stdout, or 0 when
// stdout is not a terminal.
var terminalWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func runASCII(args []string) error {
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
	if opts.width == 0 {
		if w := terminalWidth(); w > 0 {
			j.width = flow.AtMost(w)
		}
	}

	out := render.ASCII(j.frame())
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}
