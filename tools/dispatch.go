package tools

import (
	"encoding/json"
	"fmt"

	"github.com/aspelund/memexfs/store"
)

// Parameter shapes for name-based dispatch. These mirror the schemas in
// Definitions.
type grepParams struct {
	Pattern string `json:"pattern"`
	Glob    string `json:"glob"`
}

type readParams struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type lsParams struct {
	Path string `json:"path"`
}

// Call dispatches a tool invocation by name against the given store and
// returns the result serialized for the host: a JSON array for grep and
// ls, numbered text for read. Names outside {grep, read, ls} are rejected.
// Hosts speaking MCP use the typed handlers instead; this entry point
// serves generic tool-calling conventions.
func Call(s *store.DocumentStore, name string, params []byte) (string, error) {
	switch name {
	case "grep":
		var p grepParams
		if err := json.Unmarshal(params, &p); err != nil {
			return "", fmt.Errorf("parsing grep params: %w", err)
		}
		results, err := s.Grep(p.Pattern, p.Glob)
		if err != nil {
			return "", err
		}
		if results == nil {
			results = []store.GrepResult{}
		}
		encoded, err := json.Marshal(results)
		if err != nil {
			return "", fmt.Errorf("encoding grep results: %w", err)
		}
		return string(encoded), nil

	case "read":
		var p readParams
		if err := json.Unmarshal(params, &p); err != nil {
			return "", fmt.Errorf("parsing read params: %w", err)
		}
		return s.Read(p.Path, p.Offset, p.Limit)

	case "ls":
		var p lsParams
		if err := json.Unmarshal(params, &p); err != nil {
			return "", fmt.Errorf("parsing ls params: %w", err)
		}
		entries := s.Ls(p.Path)
		encoded, err := json.Marshal(entries)
		if err != nil {
			return "", fmt.Errorf("encoding ls entries: %w", err)
		}
		return string(encoded), nil

	default:
		return "", fmt.Errorf("%w: %s", store.ErrUnknownTool, name)
	}
}
