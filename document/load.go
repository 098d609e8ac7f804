package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v4"
)

// Loader reads a contract document from disk and parses it into an
// ordered tree. The zero value is usable.
type Loader struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Loader instance with default settings
func New() *Loader {
	return &Loader{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// Load reads and parses the document at path.
//
// It fails with *NotFoundError when the file does not exist and with
// *ParseError when the content is not valid YAML or has no mapping at
// the root. Both are terminal: the caller reports the failure and does
// not attempt partial validation.
func (l *Loader) Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Cause: err}
		}
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}

	doc, err := l.Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return nil, parseErr
		}
		return nil, err
	}

	l.log().Debug("loaded document", "path", path, "size", len(data), "keys", doc.Len())
	return doc, nil
}

// Parse decodes document content into an ordered tree. The document
// root must be a mapping; anything else (a bare sequence, a scalar, an
// empty document) is rejected as a *ParseError since none of the
// structural checks can run against it.
func (l *Loader) Parse(data []byte) (*Map, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Cause: err}
	}

	decoded, err := decodeNode(&root)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	if decoded == nil {
		return nil, &ParseError{Message: "document is empty"}
	}

	doc, ok := decoded.(*Map)
	if !ok {
		return nil, &ParseError{Message: fmt.Sprintf("document root must be a mapping, got %T", decoded)}
	}
	return doc, nil
}

// Load reads and parses the document at path using a default Loader.
func Load(path string) (*Map, error) {
	return New().Load(path)
}

// Parse decodes document content using a default Loader.
func Parse(data []byte) (*Map, error) {
	return New().Parse(data)
}
