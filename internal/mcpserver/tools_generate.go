package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/rectools/generator"
	"github.com/erraggy/rectools/records"
)

// maxGenerateCount caps inline sample generation; bulk output belongs to the
// CLI generate command, not an MCP response.
const maxGenerateCount = 10000

type generateInput struct {
	Count  int    `json:"count"            jsonschema:"Number of records to generate (1-10000)"`
	Format string `json:"format"           jsonschema:"Output format (json\\, yaml\\, csv\\, or toml)"`
	Seed   uint64 `json:"seed,omitempty"   jsonschema:"Seed for deterministic output. Omit for random."`
}

type generateOutput struct {
	Format      string `json:"format"`
	RecordCount int    `json:"record_count"`
	Output      string `json:"output"`
}

func handleGenerateRecords(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.Count < 1 || input.Count > maxGenerateCount {
		return errResult(fmt.Errorf("count must be between 1 and %d, got %d", maxGenerateCount, input.Count)), generateOutput{}, nil
	}

	f, ok := records.ParseFormat(input.Format)
	if !ok {
		return errResult(fmt.Errorf("unknown format %q (supported: json, yaml, csv, toml)", input.Format)), generateOutput{}, nil
	}

	g := generator.New()
	g.Seed = input.Seed

	out, err := records.Encode(g.Records(input.Count), f)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	return nil, generateOutput{
		Format:      f.String(),
		RecordCount: input.Count,
		Output:      out,
	}, nil
}
