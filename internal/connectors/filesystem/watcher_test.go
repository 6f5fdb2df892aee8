package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Watch(t *testing.T) {
	t.Run("reports new files", func(t *testing.T) {
		dir := t.TempDir()
		w := NewWatcher(dir)
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		paths, err := w.Watch(ctx)
		require.NoError(t, err)

		target := filepath.Join(dir, "new-file.txt")
		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.WriteFile(target, []byte("content"), 0644)
		}()

		select {
		case path := <-paths:
			assert.Equal(t, target, path)
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for file event")
		}
	})

	t.Run("reports files moved in", func(t *testing.T) {
		dir := t.TempDir()
		outside := filepath.Join(t.TempDir(), "moved.txt")
		require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))
		w := NewWatcher(dir)
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		paths, err := w.Watch(ctx)
		require.NoError(t, err)

		target := filepath.Join(dir, "moved.txt")
		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = os.Rename(outside, target)
		}()

		select {
		case path := <-paths:
			assert.Equal(t, target, path)
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for move event")
		}
	})

	t.Run("error for missing directory", func(t *testing.T) {
		w := NewWatcher("/non/existent/path")

		paths, err := w.Watch(context.Background())

		assert.Error(t, err)
		assert.Nil(t, paths)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("error for file root", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := NewWatcher(file).Watch(context.Background())

		assert.Error(t, err)
	})

	t.Run("channel closes on cancel", func(t *testing.T) {
		w := NewWatcher(t.TempDir())
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())

		paths, err := w.Watch(ctx)
		require.NoError(t, err)
		cancel()

		select {
		case _, ok := <-paths:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("channel did not close after context cancellation")
		}
	})

	t.Run("error after close", func(t *testing.T) {
		w := NewWatcher(t.TempDir())
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())

		paths, err := w.Watch(context.Background())

		assert.ErrorIs(t, err, ErrWatcherClosed)
		assert.Nil(t, paths)
	})
}

func TestWatcher_HandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.txt")
	hidden := filepath.Join(dir, ".hidden.txt")
	sub := filepath.Join(dir, "text")
	nested := filepath.Join(sub, "inner.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0644))
	require.NoError(t, os.WriteFile(hidden, []byte("hidden"), 0644))
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(nested, []byte("nested"), 0644))

	w := NewWatcher(dir)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"create file", fsnotify.Event{Name: file, Op: fsnotify.Create}, true},
		{"write file", fsnotify.Event{Name: file, Op: fsnotify.Write}, true},
		{"write and chmod", fsnotify.Event{Name: file, Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: file, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: filepath.Join(dir, "gone.txt"), Op: fsnotify.Remove}, false},
		{"rename away", fsnotify.Event{Name: filepath.Join(dir, "old.txt"), Op: fsnotify.Rename}, false},
		{"create directory", fsnotify.Event{Name: sub, Op: fsnotify.Create}, false},
		{"hidden file", fsnotify.Event{Name: hidden, Op: fsnotify.Create}, false},
		{"file in subdirectory", fsnotify.Event{Name: nested, Op: fsnotify.Create}, false},
		{"vanished before stat", fsnotify.Event{Name: filepath.Join(dir, "tmp.txt"), Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := w.handleFsEvent(tt.event)

			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.event.Name, path)
			}
		})
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".hidden", true},
		{".DS_Store", true},
		{"file.txt", false},
		{"file.hidden", false},
		{".", false},
		{"..", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHidden(tt.name))
		})
	}
}
