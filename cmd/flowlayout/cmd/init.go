package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/flowlayout/pkg/errors"
	"github.com/go-drift/flowlayout/pkg/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a sample scene file",
		Long: `Write a sample scene to the given path. The format follows the file
extension (.yaml, .yml or .toml). An existing file is left alone unless
--force is given.

The sample mixes explicit sizes, labels and a hidden item, with equal
sizing on, so every command has something to show.`,
		Usage: "flowlayout init [--force] <scene>",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if err := opts.requireFiles(1, 1); err != nil {
		return err
	}
	path := opts.files[0]

	format, err := scene.FormatOf(path)
	if err != nil {
		return err
	}
	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WithPath("init", errors.KindConfig, dir, err)
		}
	}

	var b strings.Builder
	if err := scene.Encode(&b, sampleScene(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))), format); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.WithPath("init", errors.KindConfig, path, err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}

func sampleScene(name string) *scene.Scene {
	equal := true
	hs, vs := 10, 8
	return &scene.Scene{
		Version: scene.SupportedVersion,
		Name:    name,
		Container: scene.Container{
			Width:     300,
			WidthMode: "at_most",
		},
		Layout: scene.Layout{
			EqualSizing:       &equal,
			HorizontalSpacing: &hs,
			VerticalSpacing:   &vs,
			Padding:           scene.Padding{All: 6},
		},
		Items: []scene.Item{
			{Label: "go"},
			{Label: "layout"},
			{Label: "wrap"},
			{Label: "hidden", Hidden: true},
			{Label: "rows", Width: 90, Height: 30},
			{Label: "equal sizing"},
		},
	}
}
