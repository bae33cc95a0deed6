package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rectools/records"
)

type listFormatsInput struct{}

type formatInfo struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type listFormatsOutput struct {
	Formats []formatInfo `json:"formats"`
}

func handleListFormats(_ context.Context, _ *mcp.CallToolRequest, _ listFormatsInput) (*mcp.CallToolResult, listFormatsOutput, error) {
	catalog := records.Formats()
	output := listFormatsOutput{Formats: makeSlice[formatInfo](len(catalog))}
	for _, f := range catalog {
		output.Formats = append(output.Formats, formatInfo{
			Tag:  string(f),
			Name: f.String(),
		})
	}
	return nil, output, nil
}
