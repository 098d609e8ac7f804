package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harmonypay/speccheck/checklist"
	"github.com/harmonypay/speccheck/document"
)

type checkInput struct {
	Content string `json:"content"          jsonschema:"Inline API contract document content (YAML or JSON)"`
	Offset  int    `json:"offset,omitempty" jsonschema:"Skip the first N errors (for pagination)"`
	Limit   int    `json:"limit,omitempty"  jsonschema:"Maximum number of errors to return (default 100)"`
}

type checkOutput struct {
	Valid      bool     `json:"valid"`
	ErrorCount int      `json:"error_count"`
	Returned   int      `json:"returned"`
	Errors     []string `json:"errors,omitempty"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	doc, err := document.Parse([]byte(input.Content))
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	result := checklist.Run(doc)

	output := checkOutput{
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
	}
	output.Errors = paginate(result.Errors, input.Offset, input.Limit)
	output.Returned = len(output.Errors)

	return nil, output, nil
}

type statsInput struct {
	Content string `json:"content" jsonschema:"Inline API contract document content (YAML or JSON)"`
}

type serverEntry struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

type statsOutput struct {
	OpenAPIVersion string        `json:"openapi_version"`
	Title          string        `json:"title"`
	APIVersion     string        `json:"api_version"`
	Endpoints      int           `json:"endpoints"`
	Paths          int           `json:"paths"`
	Schemas        int           `json:"schemas"`
	Servers        []serverEntry `json:"servers,omitempty"`
}

func handleStats(_ context.Context, _ *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, statsOutput, error) {
	doc, err := document.Parse([]byte(input.Content))
	if err != nil {
		return errResult(err), statsOutput{}, nil
	}

	stats := checklist.Collect(doc)

	output := statsOutput{
		OpenAPIVersion: stats.OpenAPIVersion,
		Title:          stats.Title,
		APIVersion:     stats.APIVersion,
		Endpoints:      stats.EndpointCount,
		Paths:          stats.PathCount,
		Schemas:        stats.SchemaCount,
	}
	for _, server := range stats.Servers {
		output.Servers = append(output.Servers, serverEntry{
			URL:         server.URL,
			Description: server.Description,
		})
	}

	return nil, output, nil
}
