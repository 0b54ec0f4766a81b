// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasreconcile's merge and fix engines as MCP tools over
// stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasreconcile"
)

const serverInstructions = `oasreconcile MCP server — reconciles a pair of OpenAPI schema documents.

Tools:
- merge: import paths present only in the comprehensive document into the
  official one, normalizing path and parameter naming and copying the
  component definitions the imported paths reference.
- fix: apply targeted post-merge repairs (server template, forced
  responses, disallowed path removal, null-in-enum, operationId
  overrides) to a merged document.

Configuration: defaults are configurable via OASRECONCILE_* environment
variables set in your MCP client config.

Key settings:
- OASRECONCILE_MAX_INLINE_SIZE (default: 10485760) — maximum inline document size in bytes
- OASRECONCILE_TRANSITIVE_CLOSURE (default: false) — collect component references across copied definitions to a fixed point`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasreconcile", Version: oasreconcile.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge two OpenAPI documents: paths present in the comprehensive document but absent from the official one are imported with normalized naming, together with the schema and parameter definitions they reference. Returns added/skipped paths, copied definitions, and known gaps. Use output to write the merged document to a file, or include_document=true to return it inline.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fix",
		Description: "Apply targeted repairs to an OpenAPI document: canonical server template, forced response sets, removal of disallowed path prefixes and tags, null-in-enum repair, and operationId overrides. Use fixes to restrict which repair types run. Use output to write the fixed document to a file, or include_document=true to return it inline.",
	}, handleFix)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON
// semantics), otherwise an empty slice with capacity n.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages to
// avoid leaking directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
