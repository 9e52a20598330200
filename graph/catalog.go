// Package graph defines the WhatsApp Business Platform endpoint catalog and
// the dispatcher that turns tool invocations into Graph API requests.
package graph

// DefaultBaseURL is the Graph API host used when none is configured
const DefaultBaseURL = "https://graph.facebook.com"

// Binding declares where a parameter is placed in the outgoing request
type Binding string

const (
	// InPath substitutes the parameter into a {placeholder} path segment
	InPath Binding = "path"

	// InQuery places the parameter in the query string
	InQuery Binding = "query"

	// InBody places the parameter in the JSON request body
	InBody Binding = "body"

	// InHeader sends the parameter as an HTTP header
	InHeader Binding = "header"

	// InRawBody sends the parameter verbatim as the request body.
	// At most one parameter per endpoint may use this binding.
	InRawBody Binding = "raw_body"
)

// Param describes a single endpoint parameter
type Param struct {
	Name        string
	In          Binding
	Type        string // JSON Schema type: string, integer, boolean, array, object
	Required    bool
	Description string
}

// Endpoint describes one remote Graph API operation exposed as a tool.
// The catalog is static configuration; endpoints carry no state.
type Endpoint struct {
	Name        string
	Method      string
	Path        string // template with {param} placeholders
	Description string
	Params      []Param
}

// Param returns the named parameter declaration, if present
func (e Endpoint) Param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Catalog is an ordered set of endpoint definitions
type Catalog []Endpoint

// Lookup resolves a tool name to its endpoint definition
func (c Catalog) Lookup(name string) (Endpoint, bool) {
	for _, e := range c {
		if e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Merge appends endpoints from other, skipping names already present
func (c Catalog) Merge(other Catalog) Catalog {
	merged := c
	for _, e := range other {
		if _, exists := merged.Lookup(e.Name); exists {
			continue
		}
		merged = append(merged, e)
	}
	return merged
}
