package store

import (
	"strings"
	"testing"
)

func Test_Document_New(t *testing.T) {
	doc := NewDocument("test.md", "line one\nline two\nline three")

	if doc.TotalLines() != 3 {
		t.Fatalf("expected 3 lines, got %d", doc.TotalLines())
	}
	if doc.Lines[0] != "line one" {
		t.Errorf("expected 'line one', got %q", doc.Lines[0])
	}
}

func Test_Document_New_TrailingNewline(t *testing.T) {
	doc := NewDocument("test.md", "one\ntwo\n")

	if doc.TotalLines() != 2 {
		t.Fatalf("expected trailing newline to not add a line, got %d lines", doc.TotalLines())
	}
}

func Test_Document_New_CRLF(t *testing.T) {
	doc := NewDocument("test.md", "one\r\ntwo\r\n")

	if doc.TotalLines() != 2 {
		t.Fatalf("expected 2 lines, got %d", doc.TotalLines())
	}
	if doc.Lines[0] != "one" {
		t.Errorf("expected carriage return stripped, got %q", doc.Lines[0])
	}
}

func Test_Document_Read_Full(t *testing.T) {
	doc := NewDocument("test.md", "# Title\n\nSome content")

	result := doc.Read(0, 0)

	if !strings.Contains(result, "# Title") {
		t.Errorf("expected '# Title' in output:\n%s", result)
	}
	if !strings.Contains(result, "Some content") {
		t.Errorf("expected 'Some content' in output:\n%s", result)
	}
	if got := len(strings.Split(result, "\n")); got != doc.TotalLines() {
		t.Errorf("expected one output line per document line, got %d for %d", got, doc.TotalLines())
	}
}

func Test_Document_Read_Formatting(t *testing.T) {
	doc := NewDocument("test.md", "first\nsecond")

	result := doc.Read(0, 0)

	lines := strings.Split(result, "\n")
	if lines[0] != "  1  first" {
		t.Errorf("expected right-aligned width-3 number and two spaces, got %q", lines[0])
	}
	if lines[1] != "  2  second" {
		t.Errorf("expected %q, got %q", "  2  second", lines[1])
	}
}

func Test_Document_Read_WideLineNumbers(t *testing.T) {
	content := strings.Repeat("x\n", 1000)
	doc := NewDocument("big.md", content)

	result := doc.Read(0, 0)

	lines := strings.Split(result, "\n")
	if lines[0] != "   1  x" {
		t.Errorf("expected width to follow last emitted line number, got %q", lines[0])
	}
	if lines[999] != "1000  x" {
		t.Errorf("expected %q, got %q", "1000  x", lines[999])
	}
}

func Test_Document_Read_OffsetAndLimit(t *testing.T) {
	doc := NewDocument("test.md", "line 1\nline 2\nline 3\nline 4\nline 5")

	result := doc.Read(2, 2)

	if !strings.Contains(result, "line 2") || !strings.Contains(result, "line 3") {
		t.Errorf("expected lines 2-3, got:\n%s", result)
	}
	if strings.Contains(result, "line 1") || strings.Contains(result, "line 4") {
		t.Errorf("expected lines outside the window to be absent, got:\n%s", result)
	}
	if !strings.Contains(result, "  2  line 2") {
		t.Errorf("expected original line numbers preserved, got:\n%s", result)
	}
}

func Test_Document_Read_OffsetBeyondEnd(t *testing.T) {
	doc := NewDocument("test.md", "only line")

	if result := doc.Read(100, 0); result != "" {
		t.Errorf("expected empty output for offset beyond end, got %q", result)
	}
}

func Test_Document_Read_LimitPastEnd(t *testing.T) {
	doc := NewDocument("test.md", "one\ntwo")

	result := doc.Read(2, 50)

	if result != "  2  two" {
		t.Errorf("expected limit to clamp at document end, got %q", result)
	}
}
