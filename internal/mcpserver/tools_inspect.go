package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/jsonapikit/document"
	"github.com/erraggy/jsonapikit/schema"
)

type inspectInput struct {
	Document       documentInput `json:"document"                 jsonschema:"The JSON:API document to inspect"`
	Classification string        `json:"classification,omitempty" jsonschema:"List only primary or included resources"`
	Type           string        `json:"type,omitempty"           jsonschema:"List only resources of this type"`
	Offset         int           `json:"offset,omitempty"         jsonschema:"Skip the first N resources"`
	Limit          int           `json:"limit,omitempty"          jsonschema:"Maximum resources to return (default 100)"`
}

type resourceSummary struct {
	Type           string   `json:"type"`
	ID             string   `json:"id"`
	Classification string   `json:"classification"`
	AttributeCount int      `json:"attribute_count"`
	Relationships  []string `json:"relationships,omitempty"`
}

type inspectOutput struct {
	Summary   document.Summary  `json:"summary"`
	Total     int               `json:"total"`
	Returned  int               `json:"returned"`
	Resources []resourceSummary `json:"resources,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	switch input.Classification {
	case "", "primary", "included":
	default:
		return errResult(fmt.Errorf("invalid classification %q: must be primary or included", input.Classification)), inspectOutput{}, nil
	}

	doc, err := input.Document.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	var all []resourceSummary
	if input.Classification != "included" {
		all = appendSummaries(all, doc.Resources.PrimaryResources(), "primary", input.Type)
	}
	if input.Classification != "primary" {
		all = appendSummaries(all, doc.Resources.IncludedResources(), "included", input.Type)
	}

	page := paginate(all, input.Offset, input.Limit)
	return nil, inspectOutput{
		Summary:   doc.Summary(),
		Total:     len(all),
		Returned:  len(page),
		Resources: page,
	}, nil
}

func appendSummaries(dst []resourceSummary, resources []*schema.Resource, classification, resourceType string) []resourceSummary {
	for _, r := range resources {
		if resourceType != "" && r.Type() != resourceType {
			continue
		}
		dst = append(dst, resourceSummary{
			Type:           r.Type(),
			ID:             r.ID(),
			Classification: classification,
			AttributeCount: len(r.Attributes()),
			Relationships:  r.Relationships(),
		})
	}
	return dst
}
