// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsonschema2pojo generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonschema2pojo"
	"github.com/erraggy/jsonschema2pojo/generator"
)

const serverInstructions = `jsonschema2pojo MCP server: generates Java beans or Go structs from JSON Schema documents.

Use inspect first to see which classes a schema produces, then generate to write the files.

Configuration: generation defaults come from JSONSCHEMA2POJO_* environment variables (e.g. JSONSCHEMA2POJO_TARGET_PACKAGE, JSONSCHEMA2POJO_GENERATE_BUILDERS). Server settings use JSONSCHEMA2POJO_MCP_*:
- JSONSCHEMA2POJO_MCP_CACHE_ENABLED (default: true): cache generation results per session
- JSONSCHEMA2POJO_MCP_CACHE_FILE_TTL (default: 15m): cache TTL for file inputs
- JSONSCHEMA2POJO_MCP_CLASS_LIMIT (default: 100): default number of classes returned by inspect
- JSONSCHEMA2POJO_MCP_STRICT (default: false): fail on warnings by default

Caching: file entries use path+mtime as key and are invalidated on change. Directories are never cached.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		resultCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonschema2pojo", Version: jsonschema2pojo.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Java or Go classes from a JSON Schema document, a directory of schemas, or the component schemas of an OpenAPI document (source_type=openapi). Writes the files below output_dir and returns a manifest of generated files and any generation issues.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Preview the classes a schema would produce without writing anything. Returns class summaries (name, kind, field and method counts, file) and generation issues. Use offset/limit to page through large results and show_file to return the source of one generated file.",
	}, handleInspect)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ClassLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ClassLimit
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

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// issueInfo is the wire form of a generation issue.
type issueInfo struct {
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
}

func issueInfos(issues []generator.GenerateIssue) []issueInfo {
	out := makeSlice[issueInfo](len(issues))
	for _, i := range issues {
		out = append(out, issueInfo{
			Severity: i.Severity.String(),
			Path:     i.Path,
			Keyword:  i.Keyword,
			Message:  i.Message,
			File:     pathPattern.ReplaceAllString(i.File, "<path>"),
			Line:     i.Line,
		})
	}
	return out
}

// pathPattern matches absolute filesystem paths so they can be stripped
// from messages sent to MCP clients.
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
