// Package speccheck checks the Harmony Pay API contract document
// (openapi.yaml) for structural completeness against a fixed checklist.
//
// The library consists of three packages:
//
//   - document: Load a contract document into an ordered in-memory tree
//   - checklist: Run the fixed structural checks and collect statistics
//   - report: Render the pass/fail report and decide the exit status
//
// The checklist is deliberately not configurable: the expected paths,
// schema names, and response names are the contract under test, and they
// live as process-wide constants in the checklist package.
//
// Quick start:
//
//	doc, err := document.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := checklist.Run(doc)
//	if !result.Valid {
//		fmt.Printf("Found %d errors\n", result.ErrorCount)
//	}
//
// The speccheck binary (cmd/speccheck) wires these together and always
// checks the document at <executable dir>/../openapi.yaml. There is no
// flag or environment override for that path; the fixed location is part
// of the tool's contract.
package speccheck
