// Package watch observes a document file for external modification.
// The parent directory is watched rather than the file itself, since
// most editors replace files on save and the inode-level watch would
// go stale after the first write.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/redline-labs/redline-cli/internal/logger"
)

// EventType classifies a file change.
type EventType string

// Available event types.
const (
	EventModified EventType = "modified"
	EventRemoved  EventType = "removed"
)

// Event is one observed change to the watched file.
type Event struct {
	Path string
	Type EventType
}

// Watcher reports changes to a single document file.
type Watcher struct {
	fs     *fsnotify.Watcher
	path   string
	events chan Event
}

// New creates a watcher for the file at path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close() //nolint:errcheck
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		fs:     fs,
		path:   abs,
		events: make(chan Event),
	}, nil
}

// Events returns the channel change events are delivered on. The
// channel is closed when Run returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run pumps filesystem events until the context is cancelled or the
// underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			change := w.handleFsEvent(ev)
			if change == nil {
				continue
			}
			select {
			case w.events <- *change:
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// handleFsEvent maps a raw filesystem event to a change event, or nil
// when the event concerns another file or is not a content change.
func (w *Watcher) handleFsEvent(ev fsnotify.Event) *Event {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != w.path {
		return nil
	}

	switch {
	case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
		return &Event{Path: w.path, Type: EventRemoved}
	case ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create):
		return &Event{Path: w.path, Type: EventModified}
	default:
		// Chmod and friends are not content changes.
		return nil
	}
}
