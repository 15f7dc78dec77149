package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/flowlayout/pkg/errors"
)

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan string, 8)
	w, err := New(50*time.Millisecond, func(p string) { changes <- p }, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Unwatched sibling files are ignored.
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte{'b', byte('0' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-changes:
		if got != want {
			t.Errorf("changed path = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	// The burst of writes is coalesced into one notification.
	select {
	case got := <-changes:
		t.Errorf("unexpected second notification for %q", got)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_RecoversFromPanic(t *testing.T) {
	var panics []*errors.PanicError
	old := errors.DefaultHandler
	errors.SetHandler(&recordingHandler{onPanic: func(p *errors.PanicError) { panics = append(panics, p) }})
	defer errors.SetHandler(old)

	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	calls := make(chan struct{}, 4)
	w, err := New(10*time.Millisecond, func(string) {
		calls <- struct{}{}
		panic("boom")
	}, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
	cancel()
	<-done

	if len(panics) == 0 || panics[0].Op != "watch.Watcher.onChange" {
		t.Errorf("panics = %v, want one recovered onChange panic", panics)
	}
}

func TestNew_RequiresFiles(t *testing.T) {
	if _, err := New(DefaultDebounce, func(string) {}); err == nil {
		t.Error("expected error with no files")
	}
}

type recordingHandler struct {
	onPanic func(*errors.PanicError)
}

func (h *recordingHandler) HandleError(*errors.FlowError) {}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
