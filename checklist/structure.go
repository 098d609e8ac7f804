package checklist

import (
	"fmt"
	"strings"

	"github.com/harmonypay/speccheck/document"
)

// CheckStructure validates the basic document structure: required
// top-level fields, a supported openapi version, and the required info
// sub-fields.
//
// Like every check in this package it returns an ordered error list and
// never fails out-of-band. A wrong-typed section yields errors instead
// of halting.
func CheckStructure(doc *document.Map) []string {
	var errs []string

	for _, field := range RequiredRootFields {
		if !doc.Has(field) {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	// Version prefix check is skipped entirely when the key is absent;
	// step one already reported that.
	if value, ok := doc.Get("openapi"); ok {
		version, isString := value.(string)
		if !isString || !strings.HasPrefix(version, "3.") {
			errs = append(errs, fmt.Sprintf("Unsupported OpenAPI version: %v", value))
		}
	}

	if doc.Has("info") {
		info := doc.Map("info")
		for _, field := range RequiredInfoFields {
			if !info.Has(field) {
				errs = append(errs, fmt.Sprintf("Missing required info field: %s", field))
			}
		}
	}

	return errs
}
