package checklist

import (
	"fmt"

	"github.com/harmonypay/speccheck/document"
)

// CheckSchemas validates that every expected schema name is defined
// under components.schemas.
//
// A missing components section (or a missing schemas table) yields a
// single section-level error and returns immediately. The per-name
// errors and the section error are mutually exclusive within one run.
func CheckSchemas(doc *document.Map) []string {
	if !doc.Has("components") {
		return []string{"Missing components section"}
	}

	components := doc.Map("components")
	if !components.Has("schemas") {
		return []string{"Missing schemas in components"}
	}

	var errs []string
	schemas := components.Map("schemas")
	for _, name := range ExpectedSchemas {
		if !schemas.Has(name) {
			errs = append(errs, fmt.Sprintf("Missing schema: %s", name))
		}
	}
	return errs
}

// CheckResponses validates that every expected reusable response name
// is defined under components.responses. The same early-return contract
// as CheckSchemas applies, except a missing components section and a
// missing responses table produce the identical section-level error.
func CheckResponses(doc *document.Map) []string {
	components := doc.Map("components")
	if components == nil || !components.Has("responses") {
		return []string{"Missing responses in components"}
	}

	var errs []string
	responses := components.Map("responses")
	for _, name := range ExpectedResponses {
		if !responses.Has(name) {
			errs = append(errs, fmt.Sprintf("Missing response: %s", name))
		}
	}
	return errs
}
