package checklist

import (
	"slices"
	"strings"

	"github.com/harmonypay/speccheck/document"
)

// Statistics contains summary information about a contract document,
// derived on the success path for reporting. Collecting statistics
// never produces errors: missing or wrong-typed sections suppress the
// corresponding line instead.
type Statistics struct {
	// OpenAPIVersion is the declared openapi version, or "Unknown"
	OpenAPIVersion string
	// Title is info.title, or "Unknown"
	Title string
	// APIVersion is info.version, or "Unknown"
	APIVersion string
	// EndpointCount is the number of operations using the counted methods
	EndpointCount int
	// PathCount is the number of keys under paths
	PathCount int
	// HasPaths reports whether the paths section is present
	HasPaths bool
	// SchemaCount is the number of keys under components.schemas
	SchemaCount int
	// HasSchemas reports whether components.schemas is present
	HasSchemas bool
	// Servers lists the declared servers in document order
	Servers []Server
	// HasServers reports whether a servers sequence is present
	HasServers bool
}

// Server describes one entry of the servers sequence.
type Server struct {
	// URL is the server url, or "Unknown"
	URL string
	// Description is the server description, or "No description"
	Description string
}

// Collect derives summary statistics from a document tree. The tree is
// not modified; collecting twice yields identical results.
func Collect(doc *document.Map) *Statistics {
	stats := &Statistics{
		OpenAPIVersion: stringOr(doc, "openapi", "Unknown"),
		Title:          stringOr(doc.Map("info"), "title", "Unknown"),
		APIVersion:     stringOr(doc.Map("info"), "version", "Unknown"),
		EndpointCount:  CountEndpoints(doc),
	}

	if doc.Has("paths") {
		stats.HasPaths = true
		stats.PathCount = doc.Map("paths").Len()
	}

	if components := doc.Map("components"); components.Has("schemas") {
		stats.HasSchemas = true
		stats.SchemaCount = components.Map("schemas").Len()
	}

	if servers := doc.Sequence("servers"); servers != nil {
		stats.HasServers = true
		stats.Servers = make([]Server, 0, len(servers))
		for _, entry := range servers {
			server, _ := entry.(*document.Map)
			stats.Servers = append(stats.Servers, Server{
				URL:         stringOr(server, "url", "Unknown"),
				Description: stringOr(server, "description", "No description"),
			})
		}
	}

	return stats
}

// CountEndpoints sums, over every path item, the operations whose
// method is one of EndpointMethods. HEAD and OPTIONS operations are
// valid for path validation but excluded here.
func CountEndpoints(doc *document.Map) int {
	count := 0
	paths := doc.Map("paths")
	for _, path := range paths.Keys() {
		pathItem := paths.Map(path)
		for _, key := range pathItem.Keys() {
			if slices.Contains(EndpointMethods, strings.ToUpper(key)) {
				count++
			}
		}
	}
	return count
}

// stringOr returns the string at key, or fallback when the key is
// absent or not a string.
func stringOr(m *document.Map, key, fallback string) string {
	if s, ok := m.String(key); ok {
		return s
	}
	return fallback
}
