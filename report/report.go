// Package report renders the checklist outcome as line-oriented text
// and decides the process exit status.
//
// Message categories carry fixed status glyphs so a terminal user can
// scan the output: 🔍/📄 informational, ❌ errors, 📊 statistics,
// ✅/🎉 success. The text after each glyph is part of the tool's output
// contract and is reproduced exactly.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harmonypay/speccheck/checklist"
	"github.com/harmonypay/speccheck/document"
)

// Printer writes the report. Out defaults to os.Stdout via New; tests
// inject a buffer.
type Printer struct {
	Out io.Writer
}

// New creates a Printer writing to standard output.
func New() *Printer {
	return &Printer{Out: os.Stdout}
}

// Header announces the run and the resolved document path. It prints
// before loading, so a load failure still shows which file was checked.
func (p *Printer) Header(path string) {
	fmt.Fprintln(p.Out, "🔍 Validating OpenAPI Specification...")
	fmt.Fprintf(p.Out, "📄 File: %s\n", path)
}

// LoadFailure reports a terminal load error: a missing document or
// unparsable content. Always returns exit status 1.
func (p *Printer) LoadFailure(err error) int {
	var notFound *document.NotFoundError
	var parseErr *document.ParseError

	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(p.Out, "❌ Error: OpenAPI file not found: %s\n", notFound.Path)
	case errors.As(err, &parseErr):
		detail := parseErr.Message
		if parseErr.Cause != nil {
			detail = parseErr.Cause.Error()
		}
		fmt.Fprintf(p.Out, "❌ Error: Invalid YAML syntax in %s: %s\n", parseErr.Path, detail)
	default:
		fmt.Fprintf(p.Out, "❌ Error: %v\n", err)
	}
	return 1
}

// Report prints the aggregated result and returns the exit status:
// the numbered error list and total on failure (statistics are not
// printed in that case), or the success message, the statistics block,
// and the closing banner on success.
func (p *Printer) Report(result *checklist.Result, doc *document.Map) int {
	if !result.Valid {
		fmt.Fprintln(p.Out, "\n❌ Validation Errors:")
		for _, msg := range result.Errors {
			fmt.Fprintf(p.Out, "   • %s\n", msg)
		}
		fmt.Fprintf(p.Out, "\n📊 Total Errors: %d\n", result.ErrorCount)
		return 1
	}

	fmt.Fprintln(p.Out, "\n✅ OpenAPI Specification is valid!")
	p.printStatistics(checklist.Collect(doc))
	fmt.Fprintln(p.Out, "\n🎉 All validations passed!")
	return 0
}

// printStatistics renders the statistics block. Lines for absent
// sections are suppressed rather than shown as zero.
func (p *Printer) printStatistics(stats *checklist.Statistics) {
	fmt.Fprintln(p.Out, "\n📊 OpenAPI Specification Statistics:")
	fmt.Fprintf(p.Out, "   OpenAPI Version: %s\n", stats.OpenAPIVersion)
	fmt.Fprintf(p.Out, "   API Title: %s\n", stats.Title)
	fmt.Fprintf(p.Out, "   API Version: %s\n", stats.APIVersion)
	fmt.Fprintf(p.Out, "   Total Endpoints: %d\n", stats.EndpointCount)

	if stats.HasPaths {
		fmt.Fprintf(p.Out, "   Total Paths: %d\n", stats.PathCount)
	}
	if stats.HasSchemas {
		fmt.Fprintf(p.Out, "   Total Schemas: %d\n", stats.SchemaCount)
	}
	if stats.HasServers {
		fmt.Fprintf(p.Out, "   Servers: %d\n", len(stats.Servers))
		for i, server := range stats.Servers {
			fmt.Fprintf(p.Out, "     %d. %s - %s\n", i+1, server.URL, server.Description)
		}
	}
}
