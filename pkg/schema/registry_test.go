package schema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/titianlabs/pagekit/pkg/schema"
)

func TestBuiltinRegistryContainsClosedSet(t *testing.T) {
	reg := schema.Builtin()

	want := []schema.TemplateID{schema.TemplateAbout, schema.TemplateContact, schema.TemplateHome}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("registered templates mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaForUnknownTemplate(t *testing.T) {
	reg := schema.Builtin()

	_, err := reg.SchemaFor(schema.TemplateID("landing"))
	if !errors.Is(err, schema.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestHomeSchemaFieldOrder(t *testing.T) {
	reg := schema.Builtin()

	s, err := reg.SchemaFor(schema.TemplateHome)
	if err != nil {
		t.Fatalf("schema for home: %v", err)
	}

	want := []string{"hero_title", "hero_subtitle", "manifesto_quote", "values"}
	if diff := cmp.Diff(want, s.FieldNames()); diff != "" {
		t.Fatalf("home field order mismatch (-want +got):\n%s", diff)
	}

	values, ok := s.Field("values")
	if !ok {
		t.Fatalf("home schema is missing the values list field")
	}
	if values.Kind != schema.KindList {
		t.Fatalf("values kind: want %q, got %q", schema.KindList, values.Kind)
	}

	icon, ok := values.RecordField("icon")
	if !ok {
		t.Fatalf("values record is missing the icon sub-field")
	}
	if icon.Enum == nil || icon.Enum.Default != "Leaf" {
		t.Fatalf("icon enum default: want Leaf, got %+v", icon.Enum)
	}
}

func TestContactSchemaIsEmpty(t *testing.T) {
	reg := schema.Builtin()

	s, err := reg.SchemaFor(schema.TemplateContact)
	if err != nil {
		t.Fatalf("schema for contact: %v", err)
	}
	if len(s.Fields) != 0 {
		t.Fatalf("contact schema should declare no fields, got %d", len(s.Fields))
	}
}

func TestRegisterDuplicateTemplate(t *testing.T) {
	reg := schema.NewRegistry()
	if err := reg.Register(schema.Schema{Template: schema.TemplateHome}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := reg.Register(schema.Schema{Template: schema.TemplateHome}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestParseTemplateID(t *testing.T) {
	cases := []struct {
		raw  string
		want schema.TemplateID
		ok   bool
	}{
		{raw: "home", want: schema.TemplateHome, ok: true},
		{raw: "about", want: schema.TemplateAbout, ok: true},
		{raw: "contact", want: schema.TemplateContact, ok: true},
		{raw: "landing", ok: false},
		{raw: "", ok: false},
	}

	for _, tc := range cases {
		got, ok := schema.ParseTemplateID(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseTemplateID(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDefaultRecordUsesEnumDefault(t *testing.T) {
	reg := schema.Builtin()
	s, err := reg.SchemaFor(schema.TemplateHome)
	if err != nil {
		t.Fatalf("schema for home: %v", err)
	}
	values, _ := s.Field("values")

	want := map[string]string{"title": "", "icon": "Leaf", "description": ""}
	if diff := cmp.Diff(want, values.DefaultRecord()); diff != "" {
		t.Fatalf("default record mismatch (-want +got):\n%s", diff)
	}
}
