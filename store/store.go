package store

import (
	"fmt"
	"sort"
	"strings"
)

// DocumentInput is one (path, content) pair supplied at construction.
// Paths are slash-delimited with no leading slash.
type DocumentInput struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// DocumentStore owns every Document plus the inverted index built from
// them. It is fully built before any query runs and never mutated after,
// so it may be shared read-only across goroutines without locking.
// Replacing the document set means building a fresh store and swapping it
// in at the caller boundary (see Handle).
type DocumentStore struct {
	docs        map[string]*Document
	index       *InvertedIndex
	sortedPaths []string
}

// NewDocumentStore builds a store from (path, content) pairs.
// An empty input list is an error. Duplicate paths overwrite: last write
// wins. A pair with an empty path is rejected.
func NewDocumentStore(inputs []DocumentInput) (*DocumentStore, error) {
	if len(inputs) == 0 {
		return nil, ErrNoDocuments
	}

	s := &DocumentStore{
		docs:  make(map[string]*Document, len(inputs)),
		index: NewInvertedIndex(),
	}

	for _, input := range inputs {
		if input.Path == "" {
			return nil, ErrEmptyPath
		}
		doc := NewDocument(input.Path, input.Content)
		s.index.AddDocument(input.Path, doc.Lines)
		s.docs[input.Path] = doc
	}

	s.sortedPaths = make([]string, 0, len(s.docs))
	for path := range s.docs {
		s.sortedPaths = append(s.sortedPaths, path)
	}
	sort.Strings(s.sortedPaths)

	return s, nil
}

// Get returns the document at path, if present.
func (s *DocumentStore) Get(path string) (*Document, bool) {
	doc, ok := s.docs[path]
	return doc, ok
}

// Read resolves path and returns its numbered content.
// See Document.Read for offset/limit semantics.
func (s *DocumentStore) Read(path string, offset int, limit int) (string, error) {
	doc, ok := s.docs[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return doc.Read(offset, limit), nil
}

// Paths returns all document paths in lexicographic order. Scan-based
// search strategies iterate this slice so results are reproducible.
func (s *DocumentStore) Paths() []string {
	return s.sortedPaths
}

// DocumentCount returns the number of stored documents.
func (s *DocumentStore) DocumentCount() int {
	return len(s.docs)
}

// TokenCount returns the number of distinct tokens in the index.
func (s *DocumentStore) TokenCount() int {
	return s.index.TokenCount()
}

// TotalLines returns the line count summed over all documents.
func (s *DocumentStore) TotalLines() int {
	total := 0
	for _, doc := range s.docs {
		total += len(doc.Lines)
	}
	return total
}

// Ls lists the immediate children of a virtual directory derived from the
// stored paths. "", "." and "/" all mean the root. Subdirectories are
// rendered once with a trailing "/" no matter how many files live under
// them; files appear as their leaf name. The result is deduplicated and
// sorted, directories and files interleaved. An unknown directory yields
// an empty slice, not an error.
func (s *DocumentStore) Ls(dir string) []string {
	prefix := ""
	if dir != "" && dir != "." && dir != "/" {
		prefix = dir
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
	}

	seen := make(map[string]struct{})
	for path := range s.docs {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok {
			continue
		}
		if slash := strings.IndexByte(rest, '/'); slash >= 0 {
			seen[rest[:slash+1]] = struct{}{}
		} else {
			seen[rest] = struct{}{}
		}
	}

	entries := make([]string, 0, len(seen))
	for entry := range seen {
		entries = append(entries, entry)
	}
	sort.Strings(entries)
	return entries
}
