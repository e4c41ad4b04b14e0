package store

import (
	"fmt"
	"strings"
)

// Document holds one knowledge-base file as a list of lines, addressed
// 1-indexed by every public operation. A lowercase mirror of the lines is
// computed once at construction so case-insensitive scans never re-fold.
type Document struct {
	Path       string
	Lines      []string
	linesLower []string
}

// NewDocument splits raw content into lines and builds the lowercase mirror.
func NewDocument(path string, content string) *Document {
	lines := splitLines(content)
	linesLower := make([]string, len(lines))
	for i, line := range lines {
		linesLower[i] = strings.ToLower(line)
	}
	return &Document{
		Path:       path,
		Lines:      lines,
		linesLower: linesLower,
	}
}

// TotalLines returns the number of lines in the document.
func (d *Document) TotalLines() int {
	return len(d.Lines)
}

// Read returns a numbered slice of the document.
// offset is 1-indexed; values below 1 mean "from the start". An offset past
// the end of the document yields an empty string, not an error. limit caps
// the number of lines returned; zero or negative means "to end of document".
//
// Each output line is a right-aligned line number (minimum width 3), two
// spaces, then the raw line. Agents scan this format, so it is a contract.
func (d *Document) Read(offset int, limit int) string {
	if offset < 1 {
		offset = 1
	}
	start := offset - 1
	if start >= len(d.Lines) {
		return ""
	}

	end := len(d.Lines)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	width := len(fmt.Sprint(end))
	if width < 3 {
		width = 3
	}

	var builder strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			builder.WriteByte('\n')
		}
		fmt.Fprintf(&builder, "%*d  %s", width, i+1, d.Lines[i])
	}
	return builder.String()
}

// splitLines breaks content on newlines, stripping trailing carriage returns
// and the empty segment a trailing newline would otherwise produce.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
