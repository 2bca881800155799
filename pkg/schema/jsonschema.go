package schema

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
)

// OpenAPISchema converts a template schema into an OpenAPI 3 schema
// describing the template's blob shape. API consumers use the export to
// validate content_json documents without linking this module.
func OpenAPISchema(s Schema) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Title = string(s.Template)
	for _, def := range s.Fields {
		out.WithProperty(def.Name, fieldSchema(def))
	}
	return out
}

// OpenAPISchemaJSON renders the OpenAPI export of a template schema as JSON.
func OpenAPISchemaJSON(s Schema) ([]byte, error) {
	payload, err := json.Marshal(OpenAPISchema(s))
	if err != nil {
		return nil, fmt.Errorf("schema: marshal openapi export for %q: %w", s.Template, err)
	}
	return payload, nil
}

func fieldSchema(def FieldDef) *openapi3.Schema {
	switch def.Kind {
	case KindList:
		item := openapi3.NewObjectSchema()
		for _, sub := range def.Record {
			item.WithProperty(sub.Name, fieldSchema(sub))
		}
		return openapi3.NewArraySchema().WithItems(item)
	case KindEnum:
		out := openapi3.NewStringSchema()
		if def.Enum != nil {
			tags := make([]any, 0, len(def.Enum.Values))
			for _, tag := range def.Enum.Values {
				tags = append(tags, tag)
			}
			out.WithEnum(tags...)
			out.WithDefault(def.Enum.Default)
		}
		return out
	default:
		return openapi3.NewStringSchema()
	}
}
