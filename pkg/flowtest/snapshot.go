// Package flowtest provides golden-file helpers for flow layout tests.
//
// A Snapshot captures a finished layout as indented JSON. Tests compare it
// against a file under testdata and, when FLOW_UPDATE_SNAPSHOTS=1 is set,
// rewrite the file instead:
//
//	snap := flowtest.Capture(render.NewFrame(boxes, flow.Exact(320), flow.Unbounded(), cfg))
//	snap.MatchesFile(t, "testdata/four_boxes.json")
package flowtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/flowlayout/pkg/flow"
	"github.com/go-drift/flowlayout/pkg/render"
)

// UpdateEnv is the environment variable that switches MatchesFile to
// rewriting golden files.
const UpdateEnv = "FLOW_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the serialized result of one layout run.
type Snapshot struct {
	render.Document
}

// Capture snapshots a rendered frame.
func Capture(f *render.Frame) *Snapshot {
	return &Snapshot{Document: *render.NewDocument(f)}
}

// CaptureItems runs a full relayout of items and snapshots it. Item labels
// are taken from *flow.Box values.
func CaptureItems(items []flow.Item, width, height flow.Spec, cfg flow.Config) *Snapshot {
	boxes := make([]*flow.Box, len(items))
	for i, it := range items {
		if b, ok := it.(*flow.Box); ok {
			boxes[i] = b
			continue
		}
		boxes[i] = &flow.Box{Natural: it.NaturalSize(), Hidden: !it.Visible()}
	}
	return Capture(render.NewFrame(boxes, width, height, cfg))
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When FLOW_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns empty
// string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.Marshal()
	b, _ := other.Marshal()
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// Load reads a snapshot written by UpdateFile.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// lineDiff marks each differing line of expected with "-" and of actual
// with "+".
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}

	return buf.String()
}
