package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStructure_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name: "all fields present",
			src: `
openapi: 3.0.3
info:
  title: Test
  version: 1.0.0
paths: {}
`,
			expected: nil,
		},
		{
			name: "missing openapi",
			src: `
info:
  title: Test
  version: 1.0.0
paths: {}
`,
			expected: []string{"Missing required field: openapi"},
		},
		{
			name: "missing everything",
			src:  `title: not a contract`,
			expected: []string{
				"Missing required field: openapi",
				"Missing required field: info",
				"Missing required field: paths",
			},
		},
		{
			name: "missing info and paths keeps fixed key order",
			src:  `openapi: 3.0.3`,
			expected: []string{
				"Missing required field: info",
				"Missing required field: paths",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.src)
			assert.Equal(t, tt.expected, CheckStructure(doc))
		})
	}
}

func TestCheckStructure_UnsupportedVersion(t *testing.T) {
	doc := mustParse(t, `
openapi: "2.0"
info:
  title: Test
  version: 1.0.0
paths: {}
`)

	errs := CheckStructure(doc)
	assert.Equal(t, []string{"Unsupported OpenAPI version: 2.0"}, errs,
		"exactly one version error and nothing else")
}

func TestCheckStructure_VersionCheckSkippedWhenAbsent(t *testing.T) {
	doc := mustParse(t, `
info:
  title: Test
  version: 1.0.0
paths: {}
`)

	errs := CheckStructure(doc)
	assert.Equal(t, []string{"Missing required field: openapi"}, errs,
		"absent key is reported once, not also as a version error")
}

func TestCheckStructure_NonStringVersion(t *testing.T) {
	// A bare 3.1 parses as a float; the check reports it instead of panicking.
	doc := mustParse(t, `
openapi: 3.1
info:
  title: Test
  version: 1.0.0
paths: {}
`)

	errs := CheckStructure(doc)
	assert.Equal(t, []string{"Unsupported OpenAPI version: 3.1"}, errs)
}

func TestCheckStructure_MissingInfoFields(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		expected []string
	}{
		{
			name:     "missing title",
			info:     "info:\n  version: 1.0.0\n",
			expected: []string{"Missing required info field: title"},
		},
		{
			name:     "missing version",
			info:     "info:\n  title: Test\n",
			expected: []string{"Missing required info field: version"},
		},
		{
			name: "info is not a mapping",
			info: "info: oops\n",
			expected: []string{
				"Missing required info field: title",
				"Missing required info field: version",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, "openapi: 3.0.3\npaths: {}\n"+tt.info)
			assert.Equal(t, tt.expected, CheckStructure(doc))
		})
	}
}
