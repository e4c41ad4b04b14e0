// Package watcher observes the knowledge-base directory and reports
// batches of changed paths so the caller can rebuild the document store.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IgnoreChecker filters watched paths.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// Watcher provides recursive filesystem watching with debouncing.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	ignore    IgnoreChecker
	rootDir   string
	logger    *slog.Logger
}

// NewWatcher creates a recursive watcher rooted at rootDir, registering
// every non-ignored subdirectory.
func NewWatcher(rootDir string, debounce time.Duration, ignore IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(debounce),
		ignore:    ignore,
		rootDir:   rootDir,
		logger:    logger,
	}

	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignore.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Changes returns the channel that receives debounced batches of changed
// paths.
func (w *Watcher) Changes() <-chan []string {
	return w.debouncer.Output()
}

// Start listens for filesystem events until the watcher is closed.
// Call in a goroutine.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent feeds a single fsnotify event into the debouncer.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// Newly created directories must be registered for watching.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !w.ignore.ShouldIgnoreDir(path) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
				// A directory may appear with contents already in place.
				w.debouncer.Add(path)
			}
			return
		}
	}

	// Rule-file edits change what the next rebuild loads.
	if filepath.Base(path) == ".memexignore" {
		w.debouncer.Add(path)
		return
	}

	if w.ignore.ShouldIgnore(path) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.debouncer.Add(path)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
