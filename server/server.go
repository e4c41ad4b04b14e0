package server

import (
	"github.com/aspelund/memexfs/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	grepHandler *tools.GrepHandler,
	readHandler *tools.ReadHandler,
	lsHandler *tools.LsHandler,
	statusHandler *tools.StatusHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "memexfs",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server exposes an in-memory knowledge base of text documents addressed by slash-delimited paths. Use it to locate and inspect text without loading whole documents into context:

- Use grep to find relevant documents before reading them
- Use read to fetch a document (or a line range of it) after grep
- Use ls to explore the directory structure before grepping or reading
- Results are deterministic and never ranked; grep returns at most 100 matches`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "grep",
		Description: `Search for a pattern across all documents. Returns matching file paths, line numbers, and content. Use this to find relevant documents before reading them.

Pattern behavior:
  - Plain words match case-insensitively, including inside longer words and identifiers
  - Multi-word patterns match only as a contiguous phrase
  - Patterns containing regex metacharacters are compiled as case-insensitive regular expressions`,
	}, grepHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "read",
		Description: `Read the contents of a document. Returns the full document or a specific line range as numbered lines. Use this after grep to get the full context of a matching document.`,
	}, readHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "ls",
		Description: `List the contents of a directory. Returns immediate children: file names and subdirectory names (with trailing '/'). Use this to explore the document structure before grepping or reading.`,
	}, lsHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "status",
		Description: "Show knowledge-base status: document count, token count, memory usage, and uptime.",
	}, statusHandler.Handle)

	return mcpServer
}
