// Package watcher notifies when an input file is rewritten so a batch can be rerun.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce collapses bursts of write events from a single save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a file for writes and calls onChange once per burst.
// It watches the parent directory so editors that replace the file
// (write to temp, rename over) are still seen.
type Watcher struct {
	targetPath string // The file to watch
	parentPath string // Parent directory (what we actually watch)
	onChange   func() // Callback when target changed
	watcher    *fsnotify.Watcher
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
	closed     bool
	debounce   time.Duration
}

// New creates a new Watcher for the given target path.
// The onChange callback is called after the target is written or recreated.
func New(targetPath string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	target := filepath.Clean(targetPath)

	return &Watcher{
		targetPath: target,
		parentPath: filepath.Dir(target),
		onChange:   onChange,
		watcher:    fsw,
		ctx:        ctx,
		cancel:     cancel,
		debounce:   DefaultDebounce,
	}, nil
}

// SetDebounce changes the quiet period before onChange fires. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Start begins watching for change events.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.closed {
		w.mu.Unlock()
		return errors.New("watcher: already stopped")
	}
	if _, err := os.Stat(w.parentPath); err != nil {
		w.mu.Unlock()
		return err
	}
	if err := w.watcher.Add(w.parentPath); err != nil {
		w.mu.Unlock()
		return err
	}
	w.running = true
	debounce := w.debounce
	w.mu.Unlock()

	go w.watchLoop(debounce)
	return nil
}

// Stop stops the watcher and releases the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.running = false
	w.closed = true
	w.cancel()
	return w.watcher.Close()
}

// watchLoop is the main event loop.
func (w *Watcher) watchLoop(debounce time.Duration) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-w.ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.targetPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Debug().Str("path", w.targetPath).Str("op", event.Op.String()).Msg("Input changed")
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, w.fire)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// fire calls onChange unless the target is currently missing (mid-replace).
func (w *Watcher) fire() {
	if w.ctx.Err() != nil {
		return
	}
	if _, err := os.Stat(w.targetPath); err != nil {
		log.Debug().Str("path", w.targetPath).Msg("Input missing after change, waiting for recreation")
		return
	}

	log.Info().Str("path", w.targetPath).Msg("Input changed, triggering callback")
	if w.onChange != nil {
		w.onChange()
	}
}
