// Package document loads an API contract document into an in-memory tree
// of ordered mappings, sequences, and scalars.
//
// Mapping key order follows the source document. This matters: the
// checklist iterates paths in document order, and the report's error
// ordering must stay deterministic across runs.
//
// The tree is read-only after load. Nothing in this module mutates it,
// so any number of checks may consume the same tree concurrently.
package document
