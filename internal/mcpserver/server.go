// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the speccheck checklist as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harmonypay/speccheck"
)

const serverInstructions = `speccheck MCP server — checks a Harmony Pay API contract document against the fixed service checklist.

Tools take the document content inline (YAML or JSON), not a file path. The checklist itself is not configurable: the expected paths, schema names, and response names are the contract under test.

Key settings (environment variables in your MCP client config):
- SPECCHECK_CHECK_LIMIT (default: 100) — default number of errors returned per check call
- SPECCHECK_MAX_LIMIT (default: 1000) — hard cap on any requested limit`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "speccheck", Version: speccheck.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Run the fixed Harmony Pay checklist against an API contract document. Returns the ordered error list (required fields, expected paths, operation fields, schema and response names) and overall validity. Use offset/limit to paginate through a large error list. The default limit is configurable via SPECCHECK_CHECK_LIMIT.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Collect summary statistics from an API contract document: declared version and title, endpoint/path/schema counts (endpoints count GET, POST, PUT, DELETE, and PATCH operations only), and the declared servers. Statistics never include errors; run check for those.",
	}, handleStats)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.CheckLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.CheckLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
