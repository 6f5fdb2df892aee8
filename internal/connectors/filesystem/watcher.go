package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/smartfile/internal/logger"
)

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Watcher reports regular files that appear directly inside a directory.
// Subdirectories are not watched.
type Watcher struct {
	root string

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for root. Nothing is watched until Watch.
func NewWatcher(root string) *Watcher {
	return &Watcher{root: root}
}

// Watch starts watching and returns a channel of file paths that were
// created, written or moved into the directory. The channel is closed
// when ctx is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrWatcherClosed
	}

	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", w.root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(w.root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", w.root, err)
	}
	w.watcher = fsw

	paths := make(chan string)
	go w.run(ctx, fsw, paths)

	return paths, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, paths chan<- string) {
	defer close(paths)
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			path, ok := w.handleFsEvent(event)
			if !ok {
				continue
			}
			select {
			case paths <- path:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", w.root, err)
		}
	}
}

// handleFsEvent returns the path for events that bring a visible regular
// file into existence or change one.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if isHidden(filepath.Base(event.Name)) {
		return "", false
	}
	if filepath.Dir(event.Name) != filepath.Clean(w.root) {
		return "", false
	}

	info, err := os.Lstat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	logger.Debug("watch: %s %s", event.Op, event.Name)
	return event.Name, true
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

// isHidden reports whether name is a dot file. "." and ".." are not hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
