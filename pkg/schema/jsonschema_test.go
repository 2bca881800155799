package schema_test

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/titianlabs/pagekit/pkg/schema"
)

func TestOpenAPISchemaExport(t *testing.T) {
	reg := schema.Builtin()
	s, err := reg.SchemaFor(schema.TemplateHome)
	if err != nil {
		t.Fatalf("schema for home: %v", err)
	}

	payload, err := schema.OpenAPISchemaJSON(s)
	if err != nil {
		t.Fatalf("export home schema: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("exported schema is not valid JSON: %v", err)
	}

	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("export is missing properties, got %v", doc)
	}
	for _, name := range []string{"hero_title", "hero_subtitle", "manifesto_quote", "values"} {
		if _, ok := props[name]; !ok {
			t.Errorf("exported schema is missing property %q", name)
		}
	}

	values, ok := props["values"].(map[string]any)
	if !ok {
		t.Fatalf("values property missing or malformed")
	}
	items, ok := values["items"].(map[string]any)
	if !ok {
		t.Fatalf("values export should carry an items schema, got %v", values)
	}
	itemProps, ok := items["properties"].(map[string]any)
	if !ok {
		t.Fatalf("values items export should carry properties, got %v", items)
	}
	icon, ok := itemProps["icon"].(map[string]any)
	if !ok {
		t.Fatalf("values items export is missing the icon property")
	}
	enum, ok := icon["enum"].([]any)
	if !ok || len(enum) != 6 {
		t.Fatalf("icon enum export: want 6 tags, got %v", icon["enum"])
	}
}
