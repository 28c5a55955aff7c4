// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsonapikit capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonapikit"
)

const serverInstructions = `jsonapikit MCP server: normalizes and inspects JSON:API documents.

Every tool takes a document as either a file path (document.file) or inline JSON/YAML content (document.content).

Configuration: defaults are configurable via JSONAPIKIT_* environment variables set in your MCP client config.

Key settings:
- JSONAPIKIT_CACHE_ENABLED (default: true) - disable document caching entirely
- JSONAPIKIT_CACHE_FILE_TTL (default: 15m) - cache TTL for file documents
- JSONAPIKIT_CACHE_CONTENT_TTL (default: 15m) - cache TTL for inline documents
- JSONAPIKIT_MAX_INLINE_SIZE (default: 10MiB) - maximum inline content size
- JSONAPIKIT_LIST_LIMIT (default: 100) - default resource limit for inspect

Caching: decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change).`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonapikit", Version: jsonapikit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Deduplicate a JSON:API document and re-serialize it with resources sorted by type then id. Resources present in both data and included are kept once, as primary. Use select with a JSONPath expression (e.g. $.included[*].id) to return only matching values. Output format is json (default) or yaml.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Summarize a JSON:API document: primary data shape, primary and included resource counts per type, top-level links and errors. Lists resource identities in document order; use classification (primary or included) and type to filter, and offset/limit to paginate. Default limit is configurable via JSONAPIKIT_LIST_LIMIT.",
	}, handleInspect)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
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

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
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
