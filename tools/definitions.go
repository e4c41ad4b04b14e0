package tools

// ToolDefinition describes one operation for discovery by an automated
// caller. The set below is fixed data with no lifecycle beyond process
// start; hosts that do their own tool-calling convention (rather than MCP)
// serialize it verbatim.
type ToolDefinition struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Parameters  map[string]ParameterSpec `json:"parameters"`
	Required    []string                 `json:"required"`
}

// ParameterSpec describes a single tool parameter.
type ParameterSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Definitions returns the fixed tool-definition records for grep, read and ls.
func Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "grep",
			Description: "Search for a pattern across all documents. Returns matching file paths, line numbers, and content. Use this to find relevant documents before reading them.",
			Parameters: map[string]ParameterSpec{
				"pattern": {Type: "string", Description: "Search pattern (supports regex)"},
				"glob":    {Type: "string", Description: "Optional file pattern filter, e.g. 'billing/**/*.md'"},
			},
			Required: []string{"pattern"},
		},
		{
			Name:        "read",
			Description: "Read the contents of a document. Returns the full document or a specific line range. Use this after grep to get the full context of a matching document.",
			Parameters: map[string]ParameterSpec{
				"path":   {Type: "string", Description: "Document path relative to the knowledge base root"},
				"offset": {Type: "number", Description: "Line number to start reading from (1-indexed)"},
				"limit":  {Type: "number", Description: "Number of lines to return"},
			},
			Required: []string{"path"},
		},
		{
			Name:        "ls",
			Description: "List the contents of a directory. Returns immediate children: file names and subdirectory names (with trailing '/'). Use this to explore the document structure before grepping or reading.",
			Parameters: map[string]ParameterSpec{
				"path": {Type: "string", Description: "Directory path to list, e.g. 'account' or 'billing/invoices'. Use empty string or '.' for root."},
			},
			Required: []string{"path"},
		},
	}
}
