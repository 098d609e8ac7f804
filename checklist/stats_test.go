package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountEndpoints_ExcludesHeadAndOptions(t *testing.T) {
	doc := mustParse(t, `
paths:
  /a:
    get: {}
    post: {}
  /b:
    get: {}
    head: {}
`)

	assert.Equal(t, 3, CountEndpoints(doc), "HEAD is not counted as an endpoint")
}

func TestCountEndpoints_EmptyAndAbsentPaths(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{"no paths section", `openapi: 3.0.3`, 0},
		{"empty paths", "paths: {}", 0},
		{"non-method keys only", "paths:\n  /a:\n    x-meta: true\n", 0},
		{"lowercase and uppercase methods", "paths:\n  /a:\n    get: {}\n    DELETE: {}\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.src)
			assert.Equal(t, tt.expected, CountEndpoints(doc))
		})
	}
}

func TestCollect_CompleteDocument(t *testing.T) {
	doc := completeDoc(t)

	stats := Collect(doc)
	assert.Equal(t, "3.0.3", stats.OpenAPIVersion)
	assert.Equal(t, "Harmony Pay API", stats.Title)
	assert.Equal(t, "1.0.0", stats.APIVersion)
	assert.Equal(t, len(ExpectedPaths), stats.EndpointCount, "one GET per expected path")
	assert.True(t, stats.HasPaths)
	assert.Equal(t, len(ExpectedPaths), stats.PathCount)
	assert.True(t, stats.HasSchemas)
	assert.Equal(t, len(ExpectedSchemas), stats.SchemaCount)

	require.True(t, stats.HasServers)
	require.Len(t, stats.Servers, 1)
	assert.Equal(t, "https://api.harmonypay.example", stats.Servers[0].URL)
	assert.Equal(t, "Production", stats.Servers[0].Description)
}

func TestCollect_MissingSectionsSuppressStatistics(t *testing.T) {
	doc := mustParse(t, `openapi: 3.0.3`)

	stats := Collect(doc)
	assert.Equal(t, "3.0.3", stats.OpenAPIVersion)
	assert.Equal(t, "Unknown", stats.Title)
	assert.Equal(t, "Unknown", stats.APIVersion)
	assert.Zero(t, stats.EndpointCount)
	assert.False(t, stats.HasPaths)
	assert.False(t, stats.HasSchemas)
	assert.False(t, stats.HasServers)
}

func TestCollect_ServerPlaceholders(t *testing.T) {
	doc := mustParse(t, `
servers:
  - description: Staging only
  - url: https://api.example.com
`)

	stats := Collect(doc)
	require.True(t, stats.HasServers)
	require.Len(t, stats.Servers, 2)

	assert.Equal(t, "Unknown", stats.Servers[0].URL)
	assert.Equal(t, "Staging only", stats.Servers[0].Description)
	assert.Equal(t, "https://api.example.com", stats.Servers[1].URL)
	assert.Equal(t, "No description", stats.Servers[1].Description)
}
