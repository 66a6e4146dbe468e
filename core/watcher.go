package core

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single file and fires a callback when it changes.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// WatchFile starts monitoring path. The watch is added on the parent
// directory because editors replace files on save, which invalidates a
// watch on the file itself. Events are debounced: editors often trigger
// multiple writes per save.
func WatchFile(path string, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{fw: fw, done: make(chan struct{})}
	go w.loop(abs, onChange)
	return w, nil
}

func (w *Watcher) loop(target string, onChange func()) {
	const debounceInterval = 50 * time.Millisecond
	var last time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			now := time.Now()
			if now.Sub(last) < debounceInterval {
				continue
			}
			last = now

			onChange()

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}

		case <-w.done:
			return
		}
	}
}

// Stop ends monitoring and releases all resources. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
