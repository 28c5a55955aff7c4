package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ohler55/ojg/jp"
	"go.yaml.in/yaml/v4"
)

type normalizeInput struct {
	Document documentInput `json:"document"         jsonschema:"The JSON:API document to normalize"`
	Format   string        `json:"format,omitempty" jsonschema:"Output format: json (default) or yaml"`
	Select   string        `json:"select,omitempty" jsonschema:"JSONPath expression applied to the normalized document"`
}

type normalizeOutput struct {
	Shape         string `json:"shape"`
	PrimaryCount  int    `json:"primary_count"`
	IncludedCount int    `json:"included_count"`
	Format        string `json:"format"`
	Matches       *int   `json:"matches,omitempty"`
	Document      string `json:"document"`
}

func handleNormalize(_ context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	format := input.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "yaml" {
		return errResult(fmt.Errorf("invalid format %q: must be json or yaml", input.Format)), normalizeOutput{}, nil
	}

	var path jp.Expr
	if input.Select != "" {
		var err error
		if path, err = jp.ParseString(input.Select); err != nil {
			return errResult(fmt.Errorf("invalid JSONPath %q: %w", input.Select, err)), normalizeOutput{}, nil
		}
	}

	doc, err := input.Document.resolve()
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	summary := doc.Summary()
	output := normalizeOutput{
		Shape:         summary.Shape,
		PrimaryCount:  summary.Primary,
		IncludedCount: summary.Included,
		Format:        format,
	}

	var data any = doc.ToMap()
	if path != nil {
		matches := path.Get(data)
		n := len(matches)
		output.Matches = &n
		data = matches
	}

	var out []byte
	if format == "yaml" {
		out, err = yaml.Marshal(data)
	} else {
		out, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return errResult(fmt.Errorf("marshaling to %s: %w", format, err)), normalizeOutput{}, nil
	}
	output.Document = string(out)

	return nil, output, nil
}
