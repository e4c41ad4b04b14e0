package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aspelund/memexfs/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadArgs defines the input parameters for the read tool.
type ReadArgs struct {
	Path   string `json:"path" jsonschema:"Document path relative to the knowledge base root"`
	Offset int    `json:"offset,omitempty" jsonschema:"Line number to start reading from (1-indexed)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of lines to return"`
}

// ReadHandler holds the dependencies for the read tool.
type ReadHandler struct {
	Store  *store.Handle
	Logger *slog.Logger
}

// Handle processes a read request.
func (h *ReadHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ReadArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Path == "" {
		h.Logger.Warn("read called with empty path")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: path parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	content, err := h.Store.Current().Read(args.Path, args.Offset, args.Limit)
	if err != nil {
		h.Logger.Info("read miss", "path", args.Path)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	elapsed := time.Since(start)
	h.Logger.Info("read", "path", args.Path, "offset", args.Offset, "limit", args.Limit, "elapsed", elapsed)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: content}},
	}, nil, nil
}
