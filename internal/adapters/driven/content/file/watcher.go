package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow absorbs the burst of events editors emit on save
// (truncate, write, rename) so one save yields one reload.
const debounceWindow = 150 * time.Millisecond

// Watch blocks until the deck file changes on disk or the context is
// cancelled. The parent directory is watched rather than the file
// itself because editors that save via rename replace the inode.
func (s *Source) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	target := s.Path()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching deck file: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.concerns(target, event) {
				continue
			}
			s.settle(ctx, watcher, target)
			return nil
		}
	}
}

// concerns reports whether an event is a content change to the deck file.
func (s *Source) concerns(target string, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// settle drains follow-up events for a short window after the first hit.
func (s *Source) settle(ctx context.Context, watcher *fsnotify.Watcher, target string) {
	timer := time.NewTimer(debounceWindow)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case <-watcher.Events:
		case <-watcher.Errors:
		}
	}
}
