package store

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// GrepResult is a single grep match. Line is 1-indexed and Content is the
// raw, non-lowercased line.
type GrepResult struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// maxGrepResults caps every grep call. Once reached, scanning stops
// entirely rather than truncating afterwards, which bounds worst-case work
// on pathological corpora.
const maxGrepResults = 100

// regexMetacharacters is the fixed set that routes a pattern to the regex
// strategy.
const regexMetacharacters = `|*+?()[]{}\^$.`

// Grep searches every document for pattern, optionally restricted to paths
// matching glob, and returns at most 100 results sorted by (path, line).
//
// Strategy selection:
//   - pattern contains a regex metacharacter: compile case-insensitive and
//     scan raw lines; a compile failure is a user-facing error.
//   - single alphanumeric pattern of length >= 3: substring lookup over the
//     index tokens, which also catches patterns embedded inside longer
//     tokens ("arch" inside "archive", "559571" inside "SE559571232301").
//   - anything else (multi-word or short): case-insensitive substring scan
//     over the lowercase line mirror. Multi-word patterns therefore match
//     only contiguous phrases, never scattered words.
func (s *DocumentStore) Grep(pattern string, glob string) ([]GrepResult, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	// A malformed glob filters everything out instead of failing: glob is
	// an optional filter, not a contract.
	if glob != "" && !doublestar.ValidatePattern(glob) {
		return []GrepResult{}, nil
	}

	var results []GrepResult
	if hasRegexMetacharacters(pattern) {
		var err error
		results, err = s.grepRegex(pattern, glob)
		if err != nil {
			return nil, err
		}
	} else {
		patternLower := strings.ToLower(pattern)
		if isSingleToken(patternLower) {
			results = s.grepIndex(patternLower, glob)
		} else {
			results = s.grepScan(patternLower, glob)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Path != results[j].Path {
			return results[i].Path < results[j].Path
		}
		return results[i].Line < results[j].Line
	})
	return results, nil
}

// grepIndex resolves a single-token pattern through the inverted index.
// FindContaining is the authoritative lookup here: plain exact-token lookup
// would miss patterns that only occur inside longer tokens. If the index
// yields nothing at all, fall back to the linear scan so correctness never
// depends on the index strategy.
func (s *DocumentStore) grepIndex(patternLower string, glob string) []GrepResult {
	locations := s.index.FindContaining(patternLower)
	if len(locations) == 0 {
		return s.grepScan(patternLower, glob)
	}

	var results []GrepResult
	for _, loc := range locations {
		if len(results) >= maxGrepResults {
			break
		}
		if !matchGlob(glob, loc.Path) {
			continue
		}
		doc, ok := s.docs[loc.Path]
		if !ok {
			continue
		}
		idx := loc.Line - 1
		if idx < 0 || idx >= len(doc.Lines) {
			continue
		}
		results = append(results, GrepResult{
			Path:    loc.Path,
			Line:    loc.Line,
			Content: doc.Lines[idx],
		})
	}
	return results
}

// grepScan is the linear strategy: case-insensitive substring containment
// over every document's lowercase mirror, in lexicographic path order.
func (s *DocumentStore) grepScan(patternLower string, glob string) []GrepResult {
	var results []GrepResult
	for _, path := range s.sortedPaths {
		if len(results) >= maxGrepResults {
			break
		}
		if !matchGlob(glob, path) {
			continue
		}
		doc := s.docs[path]
		for i, lineLower := range doc.linesLower {
			if len(results) >= maxGrepResults {
				break
			}
			if strings.Contains(lineLower, patternLower) {
				results = append(results, GrepResult{
					Path:    path,
					Line:    i + 1,
					Content: doc.Lines[i],
				})
			}
		}
	}
	return results
}

// grepRegex compiles the pattern case-insensitively and tests every raw
// line, in lexicographic path order.
func (s *DocumentStore) grepRegex(pattern string, glob string) ([]GrepResult, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegex, err)
	}

	var results []GrepResult
	for _, path := range s.sortedPaths {
		if len(results) >= maxGrepResults {
			break
		}
		if !matchGlob(glob, path) {
			continue
		}
		doc := s.docs[path]
		for i, line := range doc.Lines {
			if len(results) >= maxGrepResults {
				break
			}
			if re.MatchString(line) {
				results = append(results, GrepResult{
					Path:    path,
					Line:    i + 1,
					Content: line,
				})
			}
		}
	}
	return results, nil
}

// hasRegexMetacharacters reports whether any rune of pattern is in the
// fixed metacharacter set.
func hasRegexMetacharacters(pattern string) bool {
	return strings.ContainsAny(pattern, regexMetacharacters)
}

// isSingleToken reports whether the lowered pattern is one alphanumeric
// run long enough for the index strategy to be worthwhile.
func isSingleToken(patternLower string) bool {
	if len(patternLower) < 3 {
		return false
	}
	for _, r := range patternLower {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// matchGlob applies the optional glob filter to a candidate path.
// Match errors count as "no match"; the pattern was already validated, so
// this only guards doublestar edge cases.
func matchGlob(glob string, path string) bool {
	if glob == "" {
		return true
	}
	matched, err := doublestar.Match(glob, path)
	return err == nil && matched
}
