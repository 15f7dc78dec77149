// Package watch re-runs work when scene files change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-drift/flowlayout/pkg/errors"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls a function whenever one of a set of files is written,
// created or renamed into place.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	onChange func(path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
	fired   chan string
	done    chan struct{}
}

// New watches files. The parent directory of each file is watched so that
// atomic saves (write to temp, rename over) are seen.
func New(debounce time.Duration, onChange func(path string), files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New("watch.New", errors.KindWatch, fmt.Errorf("no files to watch"))
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New("watch.New", errors.KindWatch, err)
	}
	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		debounce: debounce,
		onChange: onChange,
		pending:  make(map[string]*time.Timer),
		fired:    make(chan string, len(files)),
		done:     make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, errors.WithPath("watch.New", errors.KindWatch, f, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.WithPath("watch.New", errors.KindWatch, dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

// Run delivers change notifications until ctx is cancelled. onChange runs on
// the calling goroutine, one call at a time. A panic in onChange is reported
// and does not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			errors.Report(errors.New("watch.Watcher.Run", errors.KindWatch, err))
		case path := <-w.fired:
			w.deliver(path)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil || !w.files[abs] {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[abs]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[abs] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, abs)
		w.mu.Unlock()
		select {
		case w.fired <- abs:
		case <-w.done:
		}
	})
}

func (w *Watcher) deliver(path string) {
	defer errors.Recover("watch.Watcher.onChange")
	w.onChange(path)
}

func (w *Watcher) stop() {
	w.mu.Lock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	w.fsw.Close()
}
