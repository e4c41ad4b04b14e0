package tools

import (
	"fmt"
	"strings"

	"github.com/aspelund/memexfs/store"
)

// FormatGrepResults formats grep matches as human-readable text, one match
// per line in (path, line) order.
func FormatGrepResults(results []store.GrepResult) string {
	if len(results) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches:\n\n", len(results)))
	for _, result := range results {
		builder.WriteString(fmt.Sprintf("%s:%d: %s\n", result.Path, result.Line, result.Content))
	}
	return builder.String()
}

// FormatLsEntries formats a directory listing, one entry per line.
// Subdirectory entries already carry their trailing "/".
func FormatLsEntries(dir string, entries []string) string {
	if len(entries) == 0 {
		return "Empty directory."
	}

	label := dir
	if label == "" || label == "." {
		label = "/"
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s (%d entries):\n", label, len(entries)))
	for _, entry := range entries {
		builder.WriteString(entry)
		builder.WriteByte('\n')
	}
	return builder.String()
}

// formatByteSize converts bytes to a human-readable string.
func formatByteSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
