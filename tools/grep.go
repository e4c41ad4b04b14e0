package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aspelund/memexfs/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GrepArgs defines the input parameters for the grep tool.
type GrepArgs struct {
	Pattern string `json:"pattern" jsonschema:"Search pattern (supports regex)"`
	Glob    string `json:"glob,omitempty" jsonschema:"Optional file pattern filter, e.g. 'billing/**/*.md'"`
}

// GrepHandler holds the dependencies for the grep tool.
type GrepHandler struct {
	Store  *store.Handle
	Logger *slog.Logger
}

// Handle processes a grep request.
func (h *GrepHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args GrepArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Pattern == "" {
		h.Logger.Warn("grep called with empty pattern")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: pattern parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	results, err := h.Store.Current().Grep(args.Pattern, args.Glob)
	if err != nil {
		h.Logger.Error("grep failed", "pattern", args.Pattern, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	elapsed := time.Since(start)
	h.Logger.Info("grep",
		"pattern", args.Pattern,
		"glob", args.Glob,
		"matches", len(results),
		"elapsed", elapsed,
	)

	output := FormatGrepResults(results)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
