// Command speccheck validates the Harmony Pay API contract document
// against the fixed service checklist.
//
// With no arguments it checks the document at
// <executable dir>/../openapi.yaml: the binary is expected to live in
// a subdirectory of the service checkout, next to the contract it
// checks. There is deliberately no flag or environment override for
// that path.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harmonypay/speccheck"
	"github.com/harmonypay/speccheck/checklist"
	"github.com/harmonypay/speccheck/document"
	"github.com/harmonypay/speccheck/internal/mcpserver"
	"github.com/harmonypay/speccheck/report"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "-v", "--version":
			fmt.Printf("speccheck v%s\n", speccheck.Version())
		case "help", "-h", "--help":
			printUsage()
		case "mcp":
			if err := mcpserver.Run(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
		return
	}

	path, err := contractPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(path, os.Stdout))
}

// run executes one full check of the document at path, writing the
// report to out, and returns the process exit status.
func run(path string, out io.Writer) int {
	printer := &report.Printer{Out: out}
	printer.Header(path)

	doc, err := document.Load(path)
	if err != nil {
		return printer.LoadFailure(err)
	}

	return printer.Report(checklist.Run(doc), doc)
}

// contractPath resolves the fixed document location relative to the
// running binary: the parent directory of the executable's directory,
// joined with openapi.yaml.
func contractPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "..", "openapi.yaml"), nil
}

func printUsage() {
	fmt.Println(`speccheck - Harmony Pay API contract checker

Usage:
  speccheck            Check ../openapi.yaml relative to the binary
  speccheck mcp        Run the MCP server over stdio
  speccheck version    Show version information
  speccheck help       Show this help message

Exit Status:
  0    The contract document passes every checklist item
  1    The document is missing, unparsable, or fails the checklist`)
}
