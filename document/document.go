package document

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Map is a string-keyed mapping that preserves the key order of the
// source document. Values are *Map for nested mappings, []any for
// sequences, and plain Go scalars (string, int, float64, bool, nil)
// otherwise.
//
// Callers should treat a Map as read-only after parsing.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map. Primarily useful for constructing
// fixtures in tests.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores a value under key. A duplicate key overwrites the value but
// keeps the key's original position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in document order. The returned slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Map returns the nested mapping stored under key, or nil if the key is
// absent or its value is not a mapping. The nil result is safe to call
// further accessors on, which keeps check code flat.
func (m *Map) Map(key string) *Map {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	nested, _ := v.(*Map)
	return nested
}

// Sequence returns the sequence stored under key, or nil if the key is
// absent or its value is not a sequence.
func (m *Map) Sequence(key string) []any {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	seq, _ := v.([]any)
	return seq
}

// String returns the string stored under key and whether the key held a
// string value.
func (m *Map) String(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// UnmarshalYAML decodes a YAML mapping node into the Map, preserving key
// order. This lets a *Map be used directly as an unmarshal target.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeNode(node)
	if err != nil {
		return err
	}
	dm, ok := decoded.(*Map)
	if !ok {
		return fmt.Errorf("document: expected a mapping, got %s", nodeKindName(node))
	}
	*m = *dm
	return nil
}

// decodeNode converts a yaml.Node subtree into the ordered tree
// representation. Mappings become *Map, sequences []any, and scalars
// decode through the yaml library's native scalar handling.
func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeNode(node.Content[0])

	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return nil, fmt.Errorf("document: invalid mapping key at line %d: %w", keyNode.Line, err)
			}
			value, err := decodeNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, value)
		}
		return m, nil

	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil

	case yaml.AliasNode:
		return decodeNode(node.Alias)

	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("document: invalid scalar at line %d: %w", node.Line, err)
		}
		return value, nil
	}
}

// nodeKindName returns a human-readable name for a node kind, for error
// messages.
func nodeKindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
