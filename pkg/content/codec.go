package content

import (
	"fmt"

	"github.com/titianlabs/pagekit/pkg/schema"
)

// Decode transforms a persisted blob into the structured value set for a
// template. Every declared field gets a value: blob keys that are missing or
// structurally mismatched decode to the field's typed default (empty string
// for text and rich-markup, the declared default tag for enums, an empty list
// for list fields) so malformed persisted data never blocks an editor from
// opening the page. Keys present in the blob but absent from the schema are
// dropped. An unknown template is fatal to the operation.
func Decode(reg *schema.Registry, template schema.TemplateID, blob Blob) (*ValueSet, error) {
	s, err := reg.SchemaFor(template)
	if err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}

	values := NewValueSet(template)
	for _, def := range s.Fields {
		raw, present := blob[def.Name]
		switch def.Kind {
		case schema.KindList:
			values.SetList(def.Name, decodeList(def, raw, present))
		case schema.KindEnum:
			values.SetText(def.Name, def.Kind, decodeEnum(def, raw, present))
		default:
			values.SetText(def.Name, def.Kind, decodeText(raw, present))
		}
	}
	return values, nil
}

// Encode transforms a structured value set back into a blob. The encoded blob
// is always exactly the schema's field set: declared fields the value set
// lacks are written as their typed defaults, extraneous values a caller may
// have smuggled in are never written, and list item identities are discarded.
// An unknown template is fatal to the operation.
func Encode(reg *schema.Registry, template schema.TemplateID, values *ValueSet) (Blob, error) {
	s, err := reg.SchemaFor(template)
	if err != nil {
		return nil, fmt.Errorf("content: encode: %w", err)
	}
	if values == nil {
		values = NewValueSet(template)
	}

	blob := make(Blob, len(s.Fields))
	for _, def := range s.Fields {
		switch def.Kind {
		case schema.KindList:
			blob[def.Name] = encodeList(def, values.ListField(def.Name))
		case schema.KindEnum:
			// A decoded set always carries the field; only hand-built sets
			// fall through to the declared default.
			if v, ok := values.Get(def.Name); ok {
				blob[def.Name] = v.Text
			} else {
				blob[def.Name] = enumDefault(def)
			}
		default:
			blob[def.Name] = values.Text(def.Name)
		}
	}
	return blob, nil
}

func decodeText(raw any, present bool) string {
	if !present {
		return ""
	}
	text, ok := raw.(string)
	if !ok {
		return ""
	}
	return text
}

func decodeEnum(def schema.FieldDef, raw any, present bool) string {
	if !present {
		return enumDefault(def)
	}
	tag, ok := raw.(string)
	if !ok {
		return enumDefault(def)
	}
	// Tags outside the declared set survive decoding; validation attributes
	// them and the renderer substitutes its own fallback.
	return tag
}

func enumDefault(def schema.FieldDef) string {
	if def.Enum == nil {
		return ""
	}
	return def.Enum.Default
}

func decodeList(def schema.FieldDef, raw any, present bool) *List {
	list := NewList()
	if !present {
		return list
	}
	elements, ok := raw.([]any)
	if !ok {
		// Structural mismatch, e.g. a string where an array is expected.
		return list
	}
	for _, element := range elements {
		list.Append(decodeRecord(def, element))
	}
	return list
}

func decodeRecord(def schema.FieldDef, element any) Record {
	fields, ok := element.(map[string]any)
	if !ok {
		return def.DefaultRecord()
	}

	record := make(Record, len(def.Record))
	for _, sub := range def.Record {
		raw, present := fields[sub.Name]
		if sub.Kind == schema.KindEnum {
			record[sub.Name] = decodeEnum(sub, raw, present)
			continue
		}
		record[sub.Name] = decodeText(raw, present)
	}
	return record
}

func encodeList(def schema.FieldDef, list *List) []any {
	items := list.Items()
	out := make([]any, 0, len(items))
	for _, item := range items {
		record := make(map[string]any, len(def.Record))
		for _, sub := range def.Record {
			record[sub.Name] = item.Record[sub.Name]
		}
		out = append(out, record)
	}
	return out
}
