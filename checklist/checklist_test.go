package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CompleteDocumentIsValid(t *testing.T) {
	doc := completeDoc(t)

	result := Run(doc)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestRun_AggregatesInFixedCheckOrder(t *testing.T) {
	// Structure, paths, schemas, responses — regardless of how broken
	// each section is.
	doc := mustParse(t, `
openapi: "2.0"
paths: {}
`)

	result := Run(doc)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)

	assert.Equal(t, "Missing required field: info", result.Errors[0])
	assert.Equal(t, "Unsupported OpenAPI version: 2.0", result.Errors[1])
	assert.Equal(t, "Missing API path: /health", result.Errors[2])

	// Last two errors come from the schemas and responses checks.
	n := len(result.Errors)
	assert.Equal(t, "Missing components section", result.Errors[n-2])
	assert.Equal(t, "Missing responses in components", result.Errors[n-1])
	assert.Equal(t, n, result.ErrorCount)
}

func TestRun_Idempotent(t *testing.T) {
	doc := mustParse(t, `
openapi: "2.0"
info:
  title: Test
paths:
  /health: broken
`)

	first := Run(doc)
	second := Run(doc)
	assert.Equal(t, first.Errors, second.Errors,
		"checks must not mutate the tree; reruns yield identical output")

	firstStats := Collect(doc)
	secondStats := Collect(doc)
	assert.Equal(t, firstStats, secondStats)
}

func TestRun_ChecksAreIndependent(t *testing.T) {
	// A document with only components: the paths check stays quiet
	// (absent section), while schemas/responses run normally.
	doc := mustParse(t, `
components:
  schemas: {}
  responses: {}
`)

	result := Run(doc)
	assert.Contains(t, result.Errors, "Missing required field: paths")
	assert.Contains(t, result.Errors, "Missing schema: Customer")
	assert.Contains(t, result.Errors, "Missing response: BadRequest")
	assert.NotContains(t, result.Errors, "Missing components section")
}
