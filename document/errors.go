package document

import "errors"

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the document file does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrParse indicates the document content is not valid YAML or does
	// not have a mapping at its root.
	ErrParse = errors.New("parse error")
)

// NotFoundError reports that the document file does not exist at the
// resolved path. It is terminal: no partial validation is attempted
// against a missing document.
type NotFoundError struct {
	// Path is the file path that was checked
	Path string
	// Cause is the underlying filesystem error
	Cause error
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	return "document not found: " + e.Path
}

// Unwrap returns the underlying cause for error chaining.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError reports that the document content could not be parsed into
// a tree. Like NotFoundError, it is terminal for the run.
type ParseError struct {
	// Path is the file path or source identifier (empty for inline content)
	Path string
	// Message describes the parsing failure when there is no Cause
	Message string
	// Cause is the underlying YAML error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
