package cmd

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/flowlayout/pkg/render"
)

const tagsScene = `version: v1.0.0
name: tags
container:
  width: 320
  width_mode: at_most
layout:
  equal_sizing: false
  horizontal_spacing: 10
  vertical_spacing: 8
items:
  - {width: 100, height: 40}
  - {width: 100, height: 40}
  - {width: 100, height: 40}
  - {width: 100, height: 40}
`

// workspace switches to an empty directory and captures command output.
func workspace(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("FLOWLAYOUT_DENSITY", "")
	t.Setenv("FLOWLAYOUT_OUTPUT", "")

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	workspace(t)
	if err := run([]string{"bogus"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	out := workspace(t)
	if err := run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "flowlayout version "+Version) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	if err := run([]string{"layout", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "flowlayout layout") {
		t.Errorf("help output = %q", out.String())
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"measure", "layout", "render", "ascii", "stats", "watch", "preview", "init"} {
		if _, ok := commands[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(*options) bool
		wantErr bool
	}{
		{"files", []string{"a.yaml", "b.toml"}, func(o *options) bool { return len(o.files) == 2 }, false},
		{"width separate", []string{"--width", "200", "a.yaml"}, func(o *options) bool { return o.width == 200 && len(o.files) == 1 }, false},
		{"width inline", []string{"--width=150"}, func(o *options) bool { return o.width == 150 }, false},
		{"equal", []string{"--equal"}, func(o *options) bool { return o.equal != nil && *o.equal }, false},
		{"no equal", []string{"--no-equal"}, func(o *options) bool { return o.equal != nil && !*o.equal }, false},
		{"spacing", []string{"--spacing", "3"}, func(o *options) bool { return *o.hspace == 3 && *o.vspace == 3 }, false},
		{"svg", []string{"--svg"}, func(o *options) bool { return o.format == "svg" }, false},
		{"mode", []string{"--mode", "exactly"}, func(o *options) bool { return o.widthMode == "exactly" }, false},
		{"bad mode", []string{"--mode", "wide"}, nil, true},
		{"negative width", []string{"--width", "-3"}, nil, true},
		{"missing value", []string{"--out"}, nil, true},
		{"unknown flag", []string{"--bogus"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseOptions(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOptions(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err == nil && !tt.check(opts) {
				t.Errorf("parseOptions(%v) = %+v", tt.args, opts)
			}
		})
	}
}

func TestMeasureCommand(t *testing.T) {
	out := workspace(t)
	writeFile(t, "tags.yaml", tagsScene)

	if err := run([]string{"measure", "tags.yaml"}); err != nil {
		t.Fatalf("measure: %v", err)
	}
	if got, want := out.String(), "tags: 320x88 rows=2 required=320x88\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	out.Reset()
	if err := run([]string{"measure", "--width", "500", "tags.yaml"}); err != nil {
		t.Fatalf("measure: %v", err)
	}
	if got, want := out.String(), "tags: 500x40 rows=1 required=430x40\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestInitThenLayout(t *testing.T) {
	out := workspace(t)

	if err := run([]string{"init", "sample.yaml"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := run([]string{"init", "sample.yaml"}); err == nil {
		t.Error("init should refuse to overwrite an existing scene")
	}
	if err := run([]string{"init", "--force", "sample.yaml"}); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out.Reset()
	if err := run([]string{"layout", "sample.yaml"}); err != nil {
		t.Fatalf("layout: %v", err)
	}
	var doc render.Document
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("layout output is not JSON: %v\n%s", err, out.String())
	}
	// Five visible items; the widest label is 100px, so two 139px slots fit
	// the 288px content box.
	if len(doc.Placements) != 5 || doc.Rows != 3 {
		t.Fatalf("placements=%d rows=%d, want 5 and 3", len(doc.Placements), doc.Rows)
	}
	for _, p := range doc.Placements {
		if p.Rect[2] != 139 || p.Rect[3] != 30 {
			t.Errorf("placement %d rect = %v, want 139x30", p.Index, p.Rect)
		}
		if p.Label == "hidden" {
			t.Error("hidden item was placed")
		}
	}
	if doc.Width != 300 || doc.Height != 118 {
		t.Errorf("container = %dx%d, want 300x118", doc.Width, doc.Height)
	}
}

func TestInitTOML(t *testing.T) {
	workspace(t)
	if err := run([]string{"init", "scenes/sample.toml"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := run([]string{"measure", "scenes/sample.toml"}); err != nil {
		t.Errorf("measure of generated toml: %v", err)
	}
	if err := run([]string{"init", "sample.json"}); err == nil {
		t.Error("init should reject unknown extensions")
	}
}

func TestRenderCommand(t *testing.T) {
	out := workspace(t)
	writeFile(t, "tags.yaml", tagsScene)
	if err := run([]string{"init", "sample.yaml"}); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := run([]string{"render", "--svg", "--out", "build", "--parallel", "2", "tags.yaml", "sample.yaml"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"tags.svg", "sample.svg"} {
		data, err := os.ReadFile(filepath.Join("build", name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if !bytes.Contains(data, []byte("<svg")) {
			t.Errorf("%s is not an SVG document", name)
		}
	}
	if got := strings.Count(out.String(), "wrote "); got != 2 {
		t.Errorf("output reports %d files, want 2:\n%s", got, out.String())
	}

	if err := run([]string{"render", "tags.yaml"}); err != nil {
		t.Fatalf("render png: %v", err)
	}
	data, err := os.ReadFile("tags.png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("tags.png is not a PNG file")
	}
}

func TestRenderMissingScene(t *testing.T) {
	workspace(t)
	if err := run([]string{"render", "missing.yaml"}); err == nil {
		t.Error("expected error for missing scene")
	}
}

func TestWriteOutputRemovesPartialFile(t *testing.T) {
	workspace(t)
	failed := stderrors.New("encoder failed")

	err := writeOutput("broken.png", func(w io.Writer) error {
		io.WriteString(w, "\x89PNG partial")
		return failed
	})
	if !stderrors.Is(err, failed) {
		t.Fatalf("writeOutput() error = %v, want %v", err, failed)
	}
	if _, err := os.Stat("broken.png"); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: %v", err)
	}

	if err := writeOutput("ok.svg", func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	}); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}
	if data, err := os.ReadFile("ok.svg"); err != nil || string(data) != "<svg/>" {
		t.Errorf("ok.svg = %q, %v", data, err)
	}
}

func TestRenderUsesConfig(t *testing.T) {
	workspace(t)
	writeFile(t, "tags.yaml", tagsScene)
	writeFile(t, "flowlayout.yaml", "output:\n  dir: out\n  format: svg\n")

	if err := run([]string{"render", "tags.yaml"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join("out", "tags.svg")); err != nil {
		t.Errorf("expected out/tags.svg: %v", err)
	}
}

func TestASCIICommand(t *testing.T) {
	out := workspace(t)
	old := terminalWidth
	terminalWidth = func() int { return 0 }
	t.Cleanup(func() { terminalWidth = old })

	writeFile(t, "cells.yaml", `container:
  width: 20
layout:
  equal_sizing: false
  horizontal_spacing: 1
  vertical_spacing: 0
items:
  - label: ab
  - label: cd
  - label: ef
`)
	if err := run([]string{"ascii", "cells.yaml"}); err != nil {
		t.Fatalf("ascii: %v", err)
	}
	// Each label is 4x3 cells with its border; all three fit in 20 cells.
	want := "+--+ +--+ +--+      \n" +
		"|ab| |cd| |ef|      \n" +
		"+--+ +--+ +--+      \n"
	if got := out.String(); got != want {
		t.Errorf("ascii output:\n%s\nwant:\n%s", got, want)
	}
}

func TestStatsCommand(t *testing.T) {
	out := workspace(t)
	writeFile(t, "tags.yaml", tagsScene)

	if err := run([]string{"stats", "tags.yaml"}); err != nil {
		t.Fatalf("stats: %v", err)
	}
	got := out.String()
	for _, want := range []string{"tags (320x88)", "row 0", "row 1", "rows=2"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats output missing %q:\n%s", want, got)
		}
	}
}
