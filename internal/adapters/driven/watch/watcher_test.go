package watch

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

func newTestWatcher(t *testing.T) (*Watcher, string, context.CancelFunc) {
	t.Helper()

	tempDir := t.TempDir()
	docPath := filepath.Join(tempDir, "doc.json")
	require.NoError(t, os.WriteFile(docPath, []byte("{}"), 0644))

	w, err := New(docPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx) //nolint:errcheck

	t.Cleanup(func() {
		cancel()
		w.Close() //nolint:errcheck
	})

	return w, docPath, cancel
}

func waitForEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()

	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for watch event")
		return Event{}
	}
}

func TestNew(t *testing.T) {
	t.Run("creates watcher for existing file", func(t *testing.T) {
		tempDir := t.TempDir()
		docPath := filepath.Join(tempDir, "doc.json")
		require.NoError(t, os.WriteFile(docPath, []byte("{}"), 0644))

		w, err := New(docPath)

		require.NoError(t, err)
		require.NotNil(t, w)
		assert.NoError(t, w.Close())
	})

	t.Run("resolves relative paths", func(t *testing.T) {
		w, err := New("doc.json")

		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(w.path))
		assert.NoError(t, w.Close())
	})

	t.Run("fails when parent directory is missing", func(t *testing.T) {
		w, err := New("/non/existent/dir/doc.json")

		assert.Error(t, err)
		assert.Nil(t, w)
	})
}

func TestWatcher_Run(t *testing.T) {
	t.Run("reports writes to the watched file", func(t *testing.T) {
		w, docPath, _ := newTestWatcher(t)

		go func() {
			time.Sleep(50 * time.Millisecond)
			os.WriteFile(docPath, []byte(`{"version":1}`), 0644) //nolint:errcheck
		}()

		ev := waitForEvent(t, w.Events())

		assert.Equal(t, EventModified, ev.Type)
		assert.Equal(t, docPath, ev.Path)
	})

	t.Run("reports removal of the watched file", func(t *testing.T) {
		w, docPath, _ := newTestWatcher(t)

		go func() {
			time.Sleep(50 * time.Millisecond)
			os.Remove(docPath) //nolint:errcheck
		}()

		ev := waitForEvent(t, w.Events())

		assert.Equal(t, EventRemoved, ev.Type)
		assert.Equal(t, docPath, ev.Path)
	})

	t.Run("survives editor style replace on save", func(t *testing.T) {
		w, docPath, _ := newTestWatcher(t)

		// Editors typically write a temp file and rename it over the
		// original. The directory watch still sees the new inode.
		go func() {
			time.Sleep(50 * time.Millisecond)
			tmp := docPath + ".tmp"
			os.WriteFile(tmp, []byte(`{"version":1}`), 0644) //nolint:errcheck
			os.Rename(tmp, docPath)                          //nolint:errcheck
		}()

		ev := waitForEvent(t, w.Events())

		assert.Equal(t, EventModified, ev.Type)
	})

	t.Run("ignores sibling files", func(t *testing.T) {
		w, docPath, _ := newTestWatcher(t)

		sibling := filepath.Join(filepath.Dir(docPath), "other.json")
		require.NoError(t, os.WriteFile(sibling, []byte("{}"), 0644))

		select {
		case ev := <-w.Events():
			t.Fatalf("unexpected event for sibling file: %+v", ev)
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("closes events channel on cancellation", func(t *testing.T) {
		w, _, cancel := newTestWatcher(t)

		cancel()

		select {
		case _, ok := <-w.Events():
			assert.False(t, ok, "events channel should be closed")
		case <-time.After(time.Second):
			t.Fatal("events channel did not close after cancellation")
		}
	})
}

func TestWatcher_HandleFsEvent(t *testing.T) {
	tempDir := t.TempDir()
	docPath := filepath.Join(tempDir, "doc.json")
	require.NoError(t, os.WriteFile(docPath, []byte("{}"), 0644))

	w, err := New(docPath)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	tests := []struct {
		name     string
		event    fsnotify.Event
		expected *Event
	}{
		{
			name:     "write maps to modified",
			event:    fsnotify.Event{Name: docPath, Op: fsnotify.Write},
			expected: &Event{Path: docPath, Type: EventModified},
		},
		{
			name:     "create maps to modified",
			event:    fsnotify.Event{Name: docPath, Op: fsnotify.Create},
			expected: &Event{Path: docPath, Type: EventModified},
		},
		{
			name:     "remove maps to removed",
			event:    fsnotify.Event{Name: docPath, Op: fsnotify.Remove},
			expected: &Event{Path: docPath, Type: EventRemoved},
		},
		{
			name:     "rename maps to removed",
			event:    fsnotify.Event{Name: docPath, Op: fsnotify.Rename},
			expected: &Event{Path: docPath, Type: EventRemoved},
		},
		{
			name:     "chmod is ignored",
			event:    fsnotify.Event{Name: docPath, Op: fsnotify.Chmod},
			expected: nil,
		},
		{
			name:     "other files are ignored",
			event:    fsnotify.Event{Name: filepath.Join(tempDir, "other.json"), Op: fsnotify.Write},
			expected: nil,
		},
		{
			name:     "write combined with chmod maps to modified",
			event:    fsnotify.Event{Name: docPath, Op: fsnotify.Write | fsnotify.Chmod},
			expected: &Event{Path: docPath, Type: EventModified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := w.handleFsEvent(tt.event)

			if tt.expected == nil {
				assert.Nil(t, change)
			} else {
				require.NotNil(t, change)
				assert.Equal(t, *tt.expected, *change)
			}
		})
	}
}
