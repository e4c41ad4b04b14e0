package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/aspelund/memexfs/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LsArgs defines the input parameters for the ls tool.
// An empty path, "." and "/" all list the root, so no field is required.
type LsArgs struct {
	Path string `json:"path" jsonschema:"Directory path to list, e.g. 'account' or 'billing/invoices'. Use empty string or '.' for root"`
}

// LsHandler holds the dependencies for the ls tool.
type LsHandler struct {
	Store  *store.Handle
	Logger *slog.Logger
}

// Handle processes an ls request.
func (h *LsHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args LsArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	entries := h.Store.Current().Ls(args.Path)

	elapsed := time.Since(start)
	h.Logger.Info("ls", "path", args.Path, "entries", len(entries), "elapsed", elapsed)

	output := FormatLsEntries(args.Path, entries)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
