package checklist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harmonypay/speccheck/document"
)

// mustParse decodes inline YAML into a document tree for tests.
func mustParse(t *testing.T, src string) *document.Map {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

// completeDoc builds a document that satisfies the full checklist:
// every expected path with a GET operation carrying all required
// fields, every expected schema, and every expected response.
func completeDoc(t *testing.T) *document.Map {
	t.Helper()
	return mustParse(t, completeDocYAML())
}

func completeDocYAML() string {
	var b strings.Builder
	b.WriteString("openapi: 3.0.3\n")
	b.WriteString("info:\n  title: Harmony Pay API\n  version: 1.0.0\n")
	b.WriteString("servers:\n  - url: https://api.harmonypay.example\n    description: Production\n")
	b.WriteString("paths:\n")
	for _, path := range ExpectedPaths {
		b.WriteString("  " + path + ":\n")
		b.WriteString("    get:\n")
		b.WriteString("      summary: Stub\n")
		b.WriteString("      operationId: stub\n")
		b.WriteString("      tags: [stub]\n")
		b.WriteString("      responses:\n        '200':\n          description: OK\n")
	}
	b.WriteString("components:\n  schemas:\n")
	for _, name := range ExpectedSchemas {
		b.WriteString("    " + name + ":\n      type: object\n")
	}
	b.WriteString("  responses:\n")
	for _, name := range ExpectedResponses {
		b.WriteString("    " + name + ":\n      description: Stub\n")
	}
	return b.String()
}
