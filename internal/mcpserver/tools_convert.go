package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rectools/converter"
	"github.com/erraggy/rectools/records"
)

type convertInput struct {
	Content string `json:"content" jsonschema:"The record collection text to convert"`
	From    string `json:"from"    jsonschema:"Source format (json\\, yaml\\, csv\\, or toml)"`
	To      string `json:"to"      jsonschema:"Target format (json\\, yaml\\, csv\\, or toml)"`
}

type convertOutput struct {
	SourceFormat string `json:"source_format"`
	TargetFormat string `json:"target_format"`
	RecordCount  int    `json:"record_count"`
	Output       string `json:"output"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.Content == "" {
		return errResult(fmt.Errorf("content is required")), convertOutput{}, nil
	}

	from, ok := records.ParseFormat(input.From)
	if !ok {
		return errResult(fmt.Errorf("unknown source format %q (supported: json, yaml, csv, toml)", input.From)), convertOutput{}, nil
	}
	to, ok := records.ParseFormat(input.To)
	if !ok {
		return errResult(fmt.Errorf("unknown target format %q (supported: json, yaml, csv, toml)", input.To)), convertOutput{}, nil
	}

	result, err := converter.ConvertWithOptions(
		converter.WithInput(input.Content),
		converter.WithSourceFormat(from),
		converter.WithTargetFormat(to),
	)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		SourceFormat: result.SourceFormat.String(),
		TargetFormat: result.TargetFormat.String(),
		RecordCount:  result.RecordCount,
		Output:       result.Output,
	}, nil
}
