// Package watcher observes the settings file and reports content changes.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/prj/internal/core/domain"
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is how long the watcher waits for a burst of writes to settle.
const DefaultDebounceWindow = 100 * time.Millisecond

// removedDigest marks a settings file that does not exist.
const removedDigest = 0

// Watcher implements ports.ConfigWatcher using fsnotify.
// The parent directory is watched so that editors replacing the file atomically are still seen.
type Watcher struct {
	logger ports.Logger
	window time.Duration

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	path      string
	events    chan ports.ConfigEvent
	settled   chan struct{}
	debouncer *Debouncer
	last      uint64
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a watcher with the default debounce window.
func New(logger ports.Logger) *Watcher {
	return NewWithWindow(logger, DefaultDebounceWindow)
}

// NewWithWindow creates a watcher that coalesces writes within window.
func NewWithWindow(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{
		logger: logger,
		window: window,
		events: make(chan ports.ConfigEvent, 1),
	}
}

// Start begins watching the settings file at path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}
	dir := filepath.Dir(absPath)

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
	}

	ctx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	w.fsWatcher = fsWatcher
	w.cancel = cancel
	w.path = absPath
	w.last = digest(absPath)
	w.settled = make(chan struct{}, 1)
	w.done = make(chan struct{})
	w.debouncer = NewDebouncer(w.window, func(burst int) {
		w.logger.Debug(fmt.Sprintf("config watcher: %d events settled", burst))
		select {
		case w.settled <- struct{}{}:
		default:
		}
	})
	w.mu.Unlock()

	go w.processEvents(ctx, fsWatcher)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	fsWatcher := w.fsWatcher
	cancel := w.cancel
	done := w.done
	debouncer := w.debouncer
	w.fsWatcher = nil
	w.mu.Unlock()

	if fsWatcher == nil {
		return nil
	}
	debouncer.Stop()
	cancel()
	err := fsWatcher.Close()
	<-done
	return err
}

// Events returns an iterator of change events. It ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.ConfigEvent] {
	return func(yield func(ports.ConfigEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) == w.path {
				w.debouncer.Trigger()
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.debouncer.Trigger()
			}
			w.logger.Warn("config watcher: " + err.Error())
		case <-w.settled:
			if !w.emitIfChanged(ctx) {
				return
			}
		}
	}
}

// emitIfChanged sends an event when the file content differs from the last seen content.
// It returns false when ctx ended while sending.
func (w *Watcher) emitIfChanged(ctx context.Context) bool {
	current := digest(w.path)
	if current == w.last {
		return true
	}
	w.last = current

	event := ports.ConfigEvent{Path: w.path, Removed: current == removedDigest}
	select {
	case w.events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

// digest hashes the file content. A missing or unreadable file hashes to removedDigest.
func digest(path string) uint64 {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own settings file
	if err != nil {
		return removedDigest
	}
	sum := xxhash.Sum64(data)
	if sum == removedDigest {
		sum++
	}
	return sum
}
