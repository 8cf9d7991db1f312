package store

import (
	"context"
	"fmt"
	"path/filepath"

	"AirFM/logger"

	"github.com/fsnotify/fsnotify"
)

// Watcher logs audio files appearing and disappearing under the audio root
// while the server runs. It feeds no cache; the catalog is rebuilt from disk
// on every request regardless.
type Watcher struct {
	store   *FileStore
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over the store's audio root.
func NewWatcher(store *FileStore) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create library watcher: %w", err)
	}
	if err := w.Add(store.Root()); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", store.Root(), err)
	}
	return &Watcher{store: store, watcher: w}, nil
}

// Run consumes watch events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(event.Name)
			if !IsAudioFile(name) {
				continue
			}
			switch {
			case event.Op&fsnotify.Create != 0:
				logger.Info("Audio file added to library", logger.String("filename", name))
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				logger.Info("Audio file removed from library", logger.String("filename", name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Library watcher error", logger.ErrorField(err))
		}
	}
}
