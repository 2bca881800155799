package schema

// TemplateID names one member of the closed template set. The zero value is
// not a valid template; use ParseTemplateID to map free-form input onto the
// known identifiers.
type TemplateID string

const (
	TemplateHome    TemplateID = "home"
	TemplateAbout   TemplateID = "about"
	TemplateContact TemplateID = "contact"
)

// KnownTemplates lists every member of the closed set in declaration order.
func KnownTemplates() []TemplateID {
	return []TemplateID{TemplateHome, TemplateAbout, TemplateContact}
}

// ParseTemplateID maps a raw string onto the closed template set. The boolean
// reports whether the identifier is a member; callers decide their own
// fallback for unknown input.
func ParseTemplateID(raw string) (TemplateID, bool) {
	switch TemplateID(raw) {
	case TemplateHome, TemplateAbout, TemplateContact:
		return TemplateID(raw), true
	default:
		return "", false
	}
}

// FieldKind is the simplified enum of content field shapes.
type FieldKind string

const (
	KindText       FieldKind = "text"
	KindRichMarkup FieldKind = "rich-markup"
	KindEnum       FieldKind = "enum"
	KindList       FieldKind = "list"
)

// EnumDef declares a closed value set for enum fields plus the tag substituted
// when a blob omits the field.
type EnumDef struct {
	Name    string
	Values  []string
	Default string
}

// Contains reports whether tag is a member of the enum's value set.
func (e EnumDef) Contains(tag string) bool {
	for _, value := range e.Values {
		if value == tag {
			return true
		}
	}
	return false
}

// FieldDef describes one editable field inside a template. For KindList the
// Record schema describes the shape of each list item; for KindEnum the Enum
// definition supplies the closed tag set.
type FieldDef struct {
	Name   string
	Kind   FieldKind
	Label  string
	Enum   *EnumDef
	Record []FieldDef
}

// Schema is the ordered field set one template exposes. Schemas are built once
// at startup and shared read-only; nothing mutates them afterwards.
type Schema struct {
	Template TemplateID
	Fields   []FieldDef
}

// Field looks up a field definition by name.
func (s Schema) Field(name string) (FieldDef, bool) {
	for _, def := range s.Fields {
		if def.Name == name {
			return def, true
		}
	}
	return FieldDef{}, false
}

// FieldNames returns the declared field names in schema order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, def := range s.Fields {
		names = append(names, def.Name)
	}
	return names
}

// RecordField looks up a sub-field definition inside a list field's record
// schema.
func (f FieldDef) RecordField(name string) (FieldDef, bool) {
	for _, def := range f.Record {
		if def.Name == name {
			return def, true
		}
	}
	return FieldDef{}, false
}

// DefaultRecord returns a fresh record value populated with each sub-field's
// typed default (empty string for scalars, the declared default for enums).
func (f FieldDef) DefaultRecord() map[string]string {
	record := make(map[string]string, len(f.Record))
	for _, def := range f.Record {
		record[def.Name] = def.defaultScalar()
	}
	return record
}

func (f FieldDef) defaultScalar() string {
	if f.Kind == KindEnum && f.Enum != nil {
		return f.Enum.Default
	}
	return ""
}
