package checklist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/harmonypay/speccheck/document"
)

// CheckPaths validates the paths section: every expected API path must
// be present, every path item must be a mapping, and every recognized
// operation must be a mapping carrying the required operation fields.
//
// When the paths key is absent this check returns no errors;
// CheckStructure already reported the missing field.
func CheckPaths(doc *document.Map) []string {
	if !doc.Has("paths") {
		return nil
	}

	var errs []string

	// A wrong-typed paths value has no keys, so every expected path is
	// reported missing and per-path iteration is skipped.
	paths := doc.Map("paths")

	// Expected paths in list order, independent of document key order.
	for _, path := range ExpectedPaths {
		if !paths.Has(path) {
			errs = append(errs, fmt.Sprintf("Missing API path: %s", path))
		}
	}

	// Present paths in document order.
	for _, path := range paths.Keys() {
		item, _ := paths.Get(path)
		pathItem, ok := item.(*document.Map)
		if !ok {
			errs = append(errs, fmt.Sprintf("Invalid path item for %s", path))
			continue
		}
		errs = append(errs, checkOperations(path, pathItem)...)
	}

	return errs
}

// checkOperations validates the operations of a single path item.
// Keys that do not uppercase to a recognized HTTP method are ignored.
func checkOperations(path string, pathItem *document.Map) []string {
	var errs []string

	for _, key := range pathItem.Keys() {
		method := strings.ToUpper(key)
		if !slices.Contains(OperationMethods, method) {
			continue
		}

		value, _ := pathItem.Get(key)
		operation, ok := value.(*document.Map)
		if !ok {
			errs = append(errs, fmt.Sprintf("Invalid operation for %s %s", method, path))
			continue
		}

		for _, field := range RequiredOperationFields {
			if !operation.Has(field) {
				errs = append(errs, fmt.Sprintf("Missing %s in %s %s", field, method, path))
			}
		}
	}

	return errs
}
