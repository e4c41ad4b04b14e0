package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/aspelund/memexfs/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StatusArgs defines the input parameters for the status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Store     *store.Handle
	StartTime time.Time
	RootDir   string
	Logger    *slog.Logger
}

// Handle processes a status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	s := h.Store.Current()
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	h.Logger.Info("status",
		"documents", s.DocumentCount(),
		"tokens", s.TokenCount(),
		"memory", memStats.Alloc,
		"uptime", uptime,
	)

	var builder strings.Builder
	builder.WriteString("=== memexfs Status ===\n\n")
	builder.WriteString(fmt.Sprintf("Knowledge base root: %s\n", h.RootDir))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	builder.WriteString(fmt.Sprintf("Documents: %d\n", s.DocumentCount()))
	builder.WriteString(fmt.Sprintf("Total lines: %d\n", s.TotalLines()))
	builder.WriteString(fmt.Sprintf("Distinct tokens: %d\n", s.TokenCount()))
	builder.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatByteSize(int64(memStats.Alloc)),
		formatByteSize(int64(memStats.HeapAlloc)),
	))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: builder.String()}},
	}, nil, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	switch {
	case totalSeconds < 60:
		return fmt.Sprintf("%ds", totalSeconds)
	case totalSeconds < 3600:
		return fmt.Sprintf("%dm %ds", totalSeconds/60, totalSeconds%60)
	default:
		return fmt.Sprintf("%dh %dm", totalSeconds/3600, (totalSeconds%3600)/60)
	}
}
