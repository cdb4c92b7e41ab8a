package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/songnote/internal/logger"
)

// DefaultDelay is how long a note must stay quiet before the handler runs.
const DefaultDelay = 300 * time.Millisecond

// ErrEmptyPath is returned when no note path is given.
var ErrEmptyPath = errors.New("watch: empty note path")

// Handler processes the note after it changed.
type Handler func(ctx context.Context, path string) error

// Watcher runs a Handler each time one note changes.
type Watcher struct {
	path    string
	delay   time.Duration
	handler Handler

	// mu serialises handler runs.
	mu   sync.Mutex
	runs int

	// timer is the pending run, reset by every relevant event.
	timerMu sync.Mutex
	timer   *time.Timer
}

// New creates a watcher for path. A non-positive delay uses DefaultDelay.
func New(path string, delay time.Duration, handler Handler) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve note path: %w", err)
	}

	if delay <= 0 {
		delay = DefaultDelay
	}

	return &Watcher{
		path:    filepath.Clean(abs),
		delay:   delay,
		handler: handler,
	}, nil
}

// Path returns the absolute note path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Runs returns how many times the handler has been invoked.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}

// Run blocks until ctx is cancelled, invoking the handler after each change.
// Handler errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	defer w.cancelPending()

	logger.Info("watching %s", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.isRelevant(event) {
				logger.Debug("watch event %s on %s", event.Op, event.Name)
				w.schedule(ctx)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// schedule runs the handler once the note has been quiet for the delay.
// An earlier pending run is dropped.
func (w *Watcher) schedule(ctx context.Context) {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		w.invoke(ctx, w.path)
	})
}

func (w *Watcher) cancelPending() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) invoke(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.runs++
	if w.handler == nil {
		return
	}
	if err := w.handler(ctx, path); err != nil {
		logger.Warn("processing %s: %v", filepath.Base(path), err)
	}
}

// isRelevant reports whether an event means the note's content may have changed.
func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
