package graph

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema builds the JSON Schema describing the endpoint's arguments,
// as advertised to MCP clients in tools/list.
func (e Endpoint) InputSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(e.Params))
	var required []string

	for _, p := range e.Params {
		schemaType := p.Type
		if schemaType == "" {
			schemaType = "string"
		}
		properties[p.Name] = &jsonschema.Schema{
			Type:        schemaType,
			Description: p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
