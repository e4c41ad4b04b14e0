package store

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, inputs []DocumentInput) *DocumentStore {
	t.Helper()
	s, err := NewDocumentStore(inputs)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return s
}

func Test_DocumentStore_LoadAndGet(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "a.md", Content: "Hello world"},
		{Path: "b.md", Content: "Goodbye world"},
	})

	if s.DocumentCount() != 2 {
		t.Fatalf("expected 2 documents, got %d", s.DocumentCount())
	}
	if _, ok := s.Get("a.md"); !ok {
		t.Error("expected a.md to be present")
	}
	if _, ok := s.Get("missing.md"); ok {
		t.Error("expected missing.md to be absent")
	}
}

func Test_DocumentStore_EmptyInput(t *testing.T) {
	_, err := NewDocumentStore(nil)

	if !errors.Is(err, ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func Test_DocumentStore_EmptyPath(t *testing.T) {
	_, err := NewDocumentStore([]DocumentInput{{Path: "", Content: "orphan"}})

	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}

func Test_DocumentStore_DuplicatePathLastWriteWins(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "a.md", Content: "first version"},
		{Path: "a.md", Content: "second version"},
	})

	if s.DocumentCount() != 1 {
		t.Fatalf("expected duplicate path to collapse, got %d documents", s.DocumentCount())
	}
	doc, _ := s.Get("a.md")
	if doc.Lines[0] != "second version" {
		t.Errorf("expected last write to win, got %q", doc.Lines[0])
	}
}

func Test_DocumentStore_PathsSorted(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "zebra.md", Content: "z"},
		{Path: "alpha.md", Content: "a"},
		{Path: "middle.md", Content: "m"},
	})

	want := []string{"alpha.md", "middle.md", "zebra.md"}
	if !reflect.DeepEqual(s.Paths(), want) {
		t.Errorf("expected %v, got %v", want, s.Paths())
	}
}

func Test_DocumentStore_IndexBuiltOnLoad(t *testing.T) {
	s := newTestStore(t, []DocumentInput{{Path: "test.md", Content: "hello world"}})

	if s.index.Lookup("hello") == nil || s.index.Lookup("world") == nil {
		t.Error("expected index populated during construction")
	}
	if s.TokenCount() != 2 {
		t.Errorf("expected 2 tokens, got %d", s.TokenCount())
	}
}

func Test_DocumentStore_TotalLines(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "a.md", Content: "one\ntwo"},
		{Path: "b.md", Content: "three"},
	})

	if got := s.TotalLines(); got != 3 {
		t.Errorf("expected 3 total lines, got %d", got)
	}
}

func Test_DocumentStore_Read(t *testing.T) {
	s := newTestStore(t, []DocumentInput{{Path: "a.md", Content: "hello"}})

	content, err := s.Read("a.md", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "hello") {
		t.Errorf("expected content, got %q", content)
	}
}

func Test_DocumentStore_Read_NotFound(t *testing.T) {
	s := newTestStore(t, []DocumentInput{{Path: "a.md", Content: "hello"}})

	_, err := s.Read("nope.md", 0, 0)

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope.md") {
		t.Errorf("expected error to name the path, got %v", err)
	}
}

func Test_DocumentStore_Ls_Root(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "account/password-reset.md", Content: "x"},
		{Path: "billing/refund.md", Content: "x"},
	})

	for _, dir := range []string{"", ".", "/"} {
		entries := s.Ls(dir)
		want := []string{"account/", "billing/"}
		if !reflect.DeepEqual(entries, want) {
			t.Errorf("Ls(%q): expected %v, got %v", dir, want, entries)
		}
	}
}

func Test_DocumentStore_Ls_Subdirectory(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "account/password-reset.md", Content: "x"},
		{Path: "billing/refund.md", Content: "x"},
	})

	entries := s.Ls("account")
	want := []string{"password-reset.md"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("expected %v, got %v", want, entries)
	}

	if withSlash := s.Ls("account/"); !reflect.DeepEqual(withSlash, want) {
		t.Errorf("expected trailing slash to be equivalent, got %v", withSlash)
	}
}

func Test_DocumentStore_Ls_Nested(t *testing.T) {
	s := newTestStore(t, []DocumentInput{
		{Path: "a/b/c.md", Content: "x"},
		{Path: "a/b/d.md", Content: "x"},
		{Path: "a/e.md", Content: "x"},
		{Path: "f.md", Content: "x"},
	})

	if got := s.Ls(""); !reflect.DeepEqual(got, []string{"a/", "f.md"}) {
		t.Errorf("root: got %v", got)
	}
	if got := s.Ls("a"); !reflect.DeepEqual(got, []string{"b/", "e.md"}) {
		t.Errorf("a: got %v", got)
	}
	if got := s.Ls("a/b"); !reflect.DeepEqual(got, []string{"c.md", "d.md"}) {
		t.Errorf("a/b: got %v", got)
	}
}

func Test_DocumentStore_Ls_UnknownDirectory(t *testing.T) {
	s := newTestStore(t, []DocumentInput{{Path: "a.md", Content: "x"}})

	if entries := s.Ls("nonexistent"); len(entries) != 0 {
		t.Errorf("expected empty listing, got %v", entries)
	}
}

func Test_Handle_Swap(t *testing.T) {
	first := newTestStore(t, []DocumentInput{{Path: "a.md", Content: "x"}})
	second := newTestStore(t, []DocumentInput{
		{Path: "a.md", Content: "x"},
		{Path: "b.md", Content: "y"},
	})

	h := NewHandle(first)
	if h.Current().DocumentCount() != 1 {
		t.Fatalf("expected initial store, got %d documents", h.Current().DocumentCount())
	}

	h.Swap(second)
	if h.Current().DocumentCount() != 2 {
		t.Fatalf("expected swapped store, got %d documents", h.Current().DocumentCount())
	}
}
