// Package ignore decides which files under the knowledge-base root are
// excluded from loading.
package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreFileName is the per-corpus rule file, using gitignore syntax.
const IgnoreFileName = ".memexignore"

// defaultDirNames are directory names skipped in any corpus.
var defaultDirNames = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	"node_modules": {},
	".idea":        {},
	".vscode":      {},
}

// defaultFileNames are file names skipped in any corpus.
var defaultFileNames = map[string]struct{}{
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
	// The server's own log file lives in the corpus root; indexing it
	// would retrigger the watcher on every logged query.
	"memexfs.log": {},
}

// Matcher determines whether a path should be excluded from the document
// walk. It combines built-in defaults, .memexignore rules, and custom
// patterns supplied on the command line.
// Thread-safe: Reload takes a write lock, the Should* methods a read lock.
type Matcher struct {
	mu               sync.RWMutex
	rootDir          string
	rules            gitignore.GitIgnore
	customPatterns   []string
	maxFileSizeBytes int64
}

// Options configures a Matcher.
type Options struct {
	RootDir          string
	CustomPatterns   []string
	MaxFileSizeBytes int64
}

// NewMatcher creates a matcher for the given knowledge-base root.
func NewMatcher(options Options) *Matcher {
	m := &Matcher{
		rootDir:          options.RootDir,
		customPatterns:   options.CustomPatterns,
		maxFileSizeBytes: options.MaxFileSizeBytes,
	}
	if m.maxFileSizeBytes <= 0 {
		m.maxFileSizeBytes = 1024 * 1024
	}
	m.rules = loadRules(options.RootDir)
	return m
}

// Reload re-reads the .memexignore file, picking up rule changes.
func (m *Matcher) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = loadRules(m.rootDir)
}

// ShouldIgnore reports whether the given absolute path is excluded.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	baseName := filepath.Base(absolutePath)
	if _, skip := defaultFileNames[baseName]; skip {
		return true
	}
	if baseName == IgnoreFileName {
		return true
	}
	// Hidden files and anything under a hidden directory.
	for _, part := range strings.Split(relativePath, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}

	if m.rules != nil {
		isDir := false
		if info, statErr := os.Stat(absolutePath); statErr == nil {
			isDir = info.IsDir()
		}
		if match := m.rules.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}

	for _, pattern := range m.customPatterns {
		if matchesPattern(relativePath, baseName, pattern) {
			return true
		}
	}
	return false
}

// ShouldIgnoreDir reports whether a directory should be skipped entirely.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	dirName := filepath.Base(absolutePath)
	if _, skip := defaultDirNames[dirName]; skip {
		return true
	}
	return m.ShouldIgnore(absolutePath)
}

// IsFileTooLarge reports whether a file exceeds the size limit.
func (m *Matcher) IsFileTooLarge(fileSize int64) bool {
	return fileSize > m.maxFileSizeBytes
}

// MaxFileSizeBytes returns the configured limit.
func (m *Matcher) MaxFileSizeBytes() int64 {
	return m.maxFileSizeBytes
}

// matchesPattern checks one custom CLI pattern against a path. Bare names
// match any path component; glob patterns match the base name and the full
// relative path.
func matchesPattern(relativePath string, baseName string, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?[") {
		if baseName == pattern {
			return true
		}
		for _, part := range strings.Split(relativePath, "/") {
			if part == pattern {
				return true
			}
		}
		return false
	}
	if matched, err := filepath.Match(pattern, baseName); err == nil && matched {
		return true
	}
	matched, err := filepath.Match(pattern, relativePath)
	return err == nil && matched
}

// loadRules parses the .memexignore file at the corpus root, if present.
func loadRules(rootDir string) gitignore.GitIgnore {
	path := filepath.Join(rootDir, IgnoreFileName)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	rules, err := gitignore.NewFromFile(path)
	if err != nil {
		return nil
	}
	return rules
}
