package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := New("", 0, nil)
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("defaults delay and resolves path", func(t *testing.T) {
		w, err := New("song.md", 0, nil)
		require.NoError(t, err)

		assert.True(t, filepath.IsAbs(w.Path()))
		assert.Equal(t, "song.md", filepath.Base(w.Path()))
		assert.Equal(t, DefaultDelay, w.delay)
	})
}

func TestWatcher_IsRelevant(t *testing.T) {
	dir := t.TempDir()
	note := filepath.Join(dir, "song.md")
	w, err := New(note, 0, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to note", fsnotify.Event{Name: note, Op: fsnotify.Write}, true},
		{"create note", fsnotify.Event{Name: note, Op: fsnotify.Create}, true},
		{"write and chmod", fsnotify.Event{Name: note, Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: note, Op: fsnotify.Chmod}, false},
		{"remove note", fsnotify.Event{Name: note, Op: fsnotify.Remove}, false},
		{"sibling file", fsnotify.Event{Name: filepath.Join(dir, "other.md"), Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: note + ".swp", Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.isRelevant(tt.event))
		})
	}
}

func TestWatcher_ScheduleCoalescesBursts(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "song.md"), 40*time.Millisecond, nil)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		w.schedule(ctx)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return w.Runs() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, w.Runs())
}

func TestWatcher_CancelPending(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "song.md"), 40*time.Millisecond, nil)
	require.NoError(t, err)

	w.schedule(context.Background())
	w.cancelPending()

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 0, w.Runs())
}

func TestWatcher_ScheduleSkipsCancelledContext(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "song.md"), 10*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.schedule(ctx)
	cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, w.Runs())
}

func TestWatcher_Run(t *testing.T) {
	t.Run("runs handler after a write", func(t *testing.T) {
		dir := t.TempDir()
		note := filepath.Join(dir, "song.md")
		require.NoError(t, os.WriteFile(note, []byte("initial"), 0o644))

		var calls atomic.Int32
		w, err := New(note, 30*time.Millisecond, func(_ context.Context, path string) error {
			assert.Equal(t, note, path)
			calls.Add(1)
			return nil
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		// Give the watcher time to register.
		time.Sleep(100 * time.Millisecond)
		require.NoError(t, os.WriteFile(note, []byte("changed"), 0o644))

		assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
		assert.GreaterOrEqual(t, w.Runs(), 1)
	})

	t.Run("handler errors keep watching", func(t *testing.T) {
		dir := t.TempDir()
		note := filepath.Join(dir, "song.md")
		require.NoError(t, os.WriteFile(note, []byte("initial"), 0o644))

		var calls atomic.Int32
		w, err := New(note, 20*time.Millisecond, func(context.Context, string) error {
			calls.Add(1)
			return errors.New("source marker not found")
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = w.Run(ctx) }()

		time.Sleep(100 * time.Millisecond)
		require.NoError(t, os.WriteFile(note, []byte("one"), 0o644))
		assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

		require.NoError(t, os.WriteFile(note, []byte("two"), 0o644))
		assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("missing directory", func(t *testing.T) {
		w, err := New(filepath.Join(t.TempDir(), "nope", "song.md"), 0, nil)
		require.NoError(t, err)

		err = w.Run(context.Background())
		assert.Error(t, err)
	})
}
