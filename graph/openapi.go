package graph

import (
	"errors"
	"fmt"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// EndpointsFromOpenAPI converts the operations of an OpenAPI 3 document into
// endpoint definitions, so the server can front Graph API operations the
// builtin catalog does not cover. Tool names come from operationId, falling
// back to "METHOD /path".
func EndpointsFromOpenAPI(data []byte) (Catalog, error) {
	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing OpenAPI document: %w", err)
	}

	model, errs := doc.BuildV3Model()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error building OpenAPI model: %w", errors.Join(errs...))
	}

	var catalog Catalog
	for pair := model.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		path := pair.Key()
		pathItem := pair.Value()
		if pathItem.Get != nil {
			catalog = append(catalog, endpointFromOperation("GET", path, pathItem.Get))
		}
		if pathItem.Post != nil {
			catalog = append(catalog, endpointFromOperation("POST", path, pathItem.Post))
		}
		if pathItem.Put != nil {
			catalog = append(catalog, endpointFromOperation("PUT", path, pathItem.Put))
		}
		if pathItem.Delete != nil {
			catalog = append(catalog, endpointFromOperation("DELETE", path, pathItem.Delete))
		}
		if pathItem.Patch != nil {
			catalog = append(catalog, endpointFromOperation("PATCH", path, pathItem.Patch))
		}
	}

	return catalog, nil
}

func endpointFromOperation(method, path string, operation *v3.Operation) Endpoint {
	name := operation.OperationId
	if name == "" {
		name = fmt.Sprintf("%s %s", method, path)
	}

	description := operation.Description
	if description == "" {
		description = operation.Summary
	}

	var params []Param
	for _, p := range operation.Parameters {
		binding := InQuery
		switch p.In {
		case "path":
			binding = InPath
		case "header":
			binding = InHeader
		case "query":
			binding = InQuery
		}

		required := binding == InPath
		if p.Required != nil {
			required = *p.Required || binding == InPath
		}

		schemaType := "string"
		if p.Schema != nil {
			if schema := p.Schema.Schema(); schema != nil && len(schema.Type) > 0 {
				schemaType = schema.Type[0]
			}
		}

		params = append(params, Param{
			Name:        p.Name,
			In:          binding,
			Type:        schemaType,
			Required:    required,
			Description: p.Description,
		})
	}

	if operation.RequestBody != nil && operation.RequestBody.Content != nil {
		if mediaType, ok := operation.RequestBody.Content.Get("application/json"); ok && mediaType != nil && mediaType.Schema != nil {
			if schema := mediaType.Schema.Schema(); schema != nil && schema.Properties != nil {
				requiredNames := map[string]bool{}
				for _, n := range schema.Required {
					requiredNames[n] = true
				}
				for pair := schema.Properties.First(); pair != nil; pair = pair.Next() {
					propName := pair.Key()
					propSchema := pair.Value()
					schemaType := "object"
					var propDescription string
					if inner := propSchema.Schema(); inner != nil {
						if len(inner.Type) > 0 {
							schemaType = inner.Type[0]
						}
						propDescription = inner.Description
					}
					params = append(params, Param{
						Name:        propName,
						In:          InBody,
						Type:        schemaType,
						Required:    requiredNames[propName],
						Description: propDescription,
					})
				}
			}
		}
	}

	return Endpoint{
		Name:        name,
		Method:      method,
		Path:        path,
		Description: description,
		Params:      params,
	}
}
