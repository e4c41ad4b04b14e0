package store

import (
	"sort"
	"strings"
	"unicode"
)

// Location identifies one line of one document. Line is 1-indexed.
type Location struct {
	Path string
	Line int
}

// InvertedIndex maps each token to the locations where it occurs.
// It is filled once during store construction and read-only afterwards.
type InvertedIndex struct {
	tokens map[string][]Location
}

// NewInvertedIndex creates an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		tokens: make(map[string][]Location),
	}
}

// AddDocument tokenizes each line and records one location per distinct
// token per line. A line containing the same word twice contributes a
// single entry for that token.
func (ix *InvertedIndex) AddDocument(path string, lines []string) {
	for i, line := range lines {
		lineNum := i + 1
		seen := make(map[string]struct{})
		for _, token := range tokenize(line) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			ix.tokens[token] = append(ix.tokens[token], Location{Path: path, Line: lineNum})
		}
	}
}

// Lookup returns the locations of an exact token (case-insensitive),
// or nil if the token never occurs.
func (ix *InvertedIndex) Lookup(token string) []Location {
	return ix.tokens[strings.ToLower(token)]
}

// FindContaining returns every location whose token contains substring
// anywhere, so "arch" finds lines holding "archive". Locations are
// deduplicated (a line matching through several tokens appears once) and
// sorted by (path, line).
func (ix *InvertedIndex) FindContaining(substring string) []Location {
	seen := make(map[Location]struct{})
	for token, locations := range ix.tokens {
		if !strings.Contains(token, substring) {
			continue
		}
		for _, loc := range locations {
			seen[loc] = struct{}{}
		}
	}

	results := make([]Location, 0, len(seen))
	for loc := range seen {
		results = append(results, loc)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Path != results[j].Path {
			return results[i].Path < results[j].Path
		}
		return results[i].Line < results[j].Line
	})
	return results
}

// TokenCount returns the number of distinct tokens in the index.
func (ix *InvertedIndex) TokenCount() int {
	return len(ix.tokens)
}

// tokenize lowercases a line and splits it on every non-alphanumeric rune.
// No stemming and no length filtering happen here; short tokens are kept so
// the query layer can decide what to do with them.
func tokenize(line string) []string {
	return strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
