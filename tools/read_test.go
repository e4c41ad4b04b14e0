package tools

import (
	"context"
	"strings"
	"testing"
)

func Test_ReadHandler_EmptyPath(t *testing.T) {
	h := &ReadHandler{Store: newTestHandle(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ReadArgs{Path: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty path")
	}
	if !strings.Contains(resultText(t, result), "path parameter is required") {
		t.Errorf("expected error message about empty path, got: %s", resultText(t, result))
	}
}

func Test_ReadHandler_NotFound(t *testing.T) {
	h := &ReadHandler{Store: newTestHandle(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ReadArgs{Path: "nonexistent.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for missing document")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "document not found") || !strings.Contains(text, "nonexistent.md") {
		t.Errorf("expected 'document not found' naming the path, got: %s", text)
	}
}

func Test_ReadHandler_Success(t *testing.T) {
	h := &ReadHandler{Store: newTestHandle(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ReadArgs{Path: "billing/refund.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got error: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "  1  # Refunds") {
		t.Errorf("expected numbered lines, got:\n%s", text)
	}
	if !strings.Contains(text, "5 business days") {
		t.Errorf("expected full content, got:\n%s", text)
	}
}

func Test_ReadHandler_OffsetAndLimit(t *testing.T) {
	h := &ReadHandler{Store: newTestHandle(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ReadArgs{Path: "billing/refund.md", Offset: 3, Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "request a refund") {
		t.Errorf("expected line 3, got:\n%s", text)
	}
	if strings.Contains(text, "# Refunds") {
		t.Errorf("expected line 1 excluded, got:\n%s", text)
	}
}

func Test_ReadHandler_OffsetBeyondEnd(t *testing.T) {
	h := &ReadHandler{Store: newTestHandle(t), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ReadArgs{Path: "billing/refund.md", Offset: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("offset beyond end is empty output, not an error")
	}
	if resultText(t, result) != "" {
		t.Errorf("expected empty output, got: %q", resultText(t, result))
	}
}
