package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.SourceWatcher = (*Watcher)(nil)

var (
	errWatcherClosed  = errors.New("watcher is closed")
	errAlreadyWatched = errors.New("watcher is already running")
)

// Watcher reports writes to a single file.
//
// The parent directory is watched rather than the file itself so that
// editors and log rotators that replace the file are still followed.
// Changes are throttled to one per interval; events arriving while a change
// is held back are folded into it.
type Watcher struct {
	path    string
	limiter *rate.Limiter

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// NewWatcher creates a watcher for the file at path. An interval of zero
// or less disables throttling.
func NewWatcher(path string, interval time.Duration) *Watcher {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Watcher{
		path:    filepath.Clean(ResolvePath(path)),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Watch starts watching. The returned channel is closed when ctx is
// cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan driven.ContentChange, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, errWatcherClosed
	}
	if w.watcher != nil {
		return nil, errAlreadyWatched
	}

	info, err := os.Stat(w.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", domain.ErrSourceUnavailable, w.path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.watcher = fw

	changes := make(chan driven.ContentChange)
	go w.run(ctx, fw, changes)

	logger.Debug("watching %s", w.path)
	return changes, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, changes chan<- driven.ContentChange) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			change := w.handleFsEvent(event)
			if change == nil {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			if !drain(fw.Events) {
				return
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", w.path, err)
		}
	}
}

// handleFsEvent converts a filesystem event into a change, or nil when the
// event does not concern the watched file or leaves nothing to read.
func (w *Watcher) handleFsEvent(event fsnotify.Event) *driven.ContentChange {
	if filepath.Clean(event.Name) != w.path {
		return nil
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return nil
	}

	info, err := os.Stat(w.path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	return &driven.ContentChange{Path: w.path}
}

// drain discards queued events. It returns false if the channel is closed.
func drain(events <-chan fsnotify.Event) bool {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return false
			}
		default:
			return true
		}
	}
}
