// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes rectools record conversion as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rectools"
)

const serverInstructions = `rectools MCP server — converts uniform record collections between JSON, YAML, CSV, and TOML.

Every record carries exactly four fields: id (unsigned integer), name (text), value (float), active (bool). Collections convert through one canonical in-memory sequence, so any format pair round-trips losslessly.

All tools operate on inline content only; the server never reads or writes files. Conversion is strict and all-or-nothing: missing fields, extra fields, or mistyped values fail the whole call with a typed error message.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "rectools", Version: rectools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a record collection between two formats (json, yaml, csv, toml). Takes inline content plus source and target format names and returns the converted text with the decoded record count. Fails with a typed error when the input is empty, malformed, or violates the four-field record schema.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_formats",
		Description: "List the supported record collection formats with their tag and display name. The set is closed; conversion accepts only these formats.",
	}, handleListFormats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_records",
		Description: "Generate a synthetic record collection and return it encoded in the requested format. Useful for producing valid sample input for the convert tool. Deterministic for a fixed seed.",
	}, handleGenerateRecords)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
