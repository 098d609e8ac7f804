// Package checklist evaluates a loaded contract document against the
// fixed Harmony Pay service checklist: required top-level fields, the
// enumerated API paths, the expected component schema names, and the
// expected reusable response names.
//
// Each check is a stateless function from the document tree to an
// ordered list of error messages. Checks never fail out-of-band and
// never stop each other: Run executes all of them and concatenates
// their findings in a fixed order, so error output is deterministic
// and a single broken section still gets the rest of the document
// checked.
package checklist
