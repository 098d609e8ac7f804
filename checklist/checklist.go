package checklist

import (
	"github.com/harmonypay/speccheck/document"
)

// defaultErrorCapacity is the initial capacity for the aggregated error list
const defaultErrorCapacity = 10

// Result contains the outcome of running the full checklist against a
// document.
type Result struct {
	// Valid is true if no errors were found
	Valid bool
	// Errors contains all error messages in fixed check order:
	// structure, paths, schemas, responses
	Errors []string
	// ErrorCount is the total number of errors
	ErrorCount int
}

// Checker runs the fixed checklist. The zero value is usable.
type Checker struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger document.Logger
}

// New creates a new Checker instance with default settings
func New() *Checker {
	return &Checker{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Checker) log() document.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return document.NopLogger{}
}

// Run executes all four checks in fixed order and concatenates their
// error lists. The checks are independent and read-only over the tree,
// so their findings never influence one another; the concatenation
// order is what keeps the report deterministic.
func (c *Checker) Run(doc *document.Map) *Result {
	errs := make([]string, 0, defaultErrorCapacity)
	errs = append(errs, CheckStructure(doc)...)
	errs = append(errs, CheckPaths(doc)...)
	errs = append(errs, CheckSchemas(doc)...)
	errs = append(errs, CheckResponses(doc)...)

	c.log().Debug("checklist complete", "errors", len(errs))

	return &Result{
		Valid:      len(errs) == 0,
		Errors:     errs,
		ErrorCount: len(errs),
	}
}

// Run executes the full checklist using a default Checker.
func Run(doc *document.Map) *Result {
	return New().Run(doc)
}
