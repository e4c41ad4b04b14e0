package store

import "errors"

// Errors reported to callers. Every one is terminal for the single call
// that raised it; none are retried and none crash the process.
var (
	// ErrNoDocuments is returned when a store is constructed from an empty
	// document list.
	ErrNoDocuments = errors.New("no documents provided")

	// ErrEmptyPath is returned when a document is supplied without a path.
	ErrEmptyPath = errors.New("document with empty path")

	// ErrEmptyPattern is returned by Grep when the pattern is empty.
	ErrEmptyPattern = errors.New("empty search pattern")

	// ErrInvalidRegex wraps a regex compile failure for patterns that
	// contain regex metacharacters.
	ErrInvalidRegex = errors.New("invalid regex")

	// ErrNotFound is returned when a read references an unknown path.
	ErrNotFound = errors.New("document not found")

	// ErrUnknownTool is returned when dispatch names an operation outside
	// the fixed set.
	ErrUnknownTool = errors.New("unknown tool")
)
