package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aspelund/memexfs/ignore"
	"github.com/aspelund/memexfs/store"
)

// loadDocuments walks the knowledge-base root and returns (path, content)
// pairs for every eligible text file. Paths are slash-delimited and
// relative to the root.
func loadDocuments(rootDir string, matcher *ignore.Matcher, logger *slog.Logger) ([]store.DocumentInput, error) {
	var inputs []store.DocumentInput

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != rootDir && matcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher.ShouldIgnore(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if matcher.IsFileTooLarge(info.Size()) {
			logger.Debug("skipped oversized file", "path", path, "size", info.Size())
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Debug("skipped unreadable file", "path", path, "error", err)
			return nil
		}
		if isBinaryContent(content) {
			logger.Debug("skipped binary file", "path", path)
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		inputs = append(inputs, store.DocumentInput{
			Path:    filepath.ToSlash(relPath),
			Content: string(content),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", rootDir, err)
	}

	return inputs, nil
}

// buildStore loads the corpus and constructs a fresh immutable store.
func buildStore(rootDir string, matcher *ignore.Matcher, logger *slog.Logger) (*store.DocumentStore, error) {
	inputs, err := loadDocuments(rootDir, matcher, logger)
	if err != nil {
		return nil, err
	}
	return store.NewDocumentStore(inputs)
}

// runRebuilds consumes watcher batches and swaps a freshly built store
// into the handle. The store itself is never mutated; each batch produces
// a complete replacement, so readers always see a consistent snapshot.
func runRebuilds(changes <-chan []string, handle *store.Handle, rootDir string, matcher *ignore.Matcher, logger *slog.Logger) {
	for batch := range changes {
		for _, path := range batch {
			if filepath.Base(path) == ignore.IgnoreFileName {
				matcher.Reload()
				logger.Info("reloaded ignore rules")
				break
			}
		}

		fresh, err := buildStore(rootDir, matcher, logger)
		if err != nil {
			// An emptied corpus keeps serving the previous snapshot.
			logger.Warn("rebuild failed, keeping previous store", "changes", len(batch), "error", err)
			continue
		}
		handle.Swap(fresh)
		logger.Info("rebuilt store",
			"changes", len(batch),
			"documents", fresh.DocumentCount(),
			"tokens", fresh.TokenCount(),
		)
	}
}

// isBinaryContent reports whether data looks binary: a NUL byte in the
// first 8KB.
func isBinaryContent(data []byte) bool {
	sample := data
	if len(sample) > 8192 {
		sample = sample[:8192]
	}
	return bytes.IndexByte(sample, 0) >= 0
}
