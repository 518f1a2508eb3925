package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors fire several writes per save; repeats inside this window per file
// are dropped.
const watchDebounce = 100 * time.Millisecond

// Watcher reports saves to a fixed set of files (the settings yaml and the
// spawn script) so dev mode can reload tuning without restarting. fsnotify
// watches the parent directories, but events for anything other than the
// named files are discarded.
type Watcher struct {
	fsw    *fsnotify.Watcher
	paths  map[string]struct{}
	events chan string
	errs   chan error
	done   chan struct{}
	once   sync.Once
}

// NewWatcher watches the given file paths. The goroutine it starts is the
// sole owner of the outgoing channels: it closes them on shutdown, so a
// concurrent Close never races a send.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		paths:  make(map[string]struct{}, len(paths)),
		events: make(chan string, 16),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}

	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		w.paths[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	go w.run()
	return w, nil
}

// Events yields a watched file's path each time it changes. Closed on
// shutdown.
func (w *Watcher) Events() <-chan string { return w.events }

// Errors yields fsnotify failures. Closed on shutdown.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close is idempotent.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.events)
	defer close(w.errs)

	last := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Create and Rename cover atomic save-via-rename editors.
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(ev.Name)
			if _, watched := w.paths[name]; !watched {
				continue
			}
			now := time.Now()
			if now.Sub(last[name]) < watchDebounce {
				continue
			}
			last[name] = now
			select {
			case w.events <- name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-w.done:
				return
			}
		}
	}
}
