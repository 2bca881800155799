package content

import (
	"github.com/titianlabs/pagekit/pkg/schema"
)

// Value holds one decoded field. Kind selects which member is meaningful:
// Text carries scalar kinds (text, rich-markup, enum tags), List carries
// list-of-record kinds.
type Value struct {
	Kind schema.FieldKind
	Text string
	List *List
}

// ValueSet is the decoded, structured representation of one page's content
// for one template. It is exclusively owned by whichever component currently
// holds it (the editing surface during an edit session, the renderer during
// a render pass) and is never shared with concurrent mutators.
type ValueSet struct {
	Template schema.TemplateID
	fields   map[string]Value
}

// NewValueSet creates an empty value set bound to a template identifier.
func NewValueSet(template schema.TemplateID) *ValueSet {
	return &ValueSet{
		Template: template,
		fields:   make(map[string]Value),
	}
}

// Get returns the value stored for a field name.
func (vs *ValueSet) Get(name string) (Value, bool) {
	v, ok := vs.fields[name]
	return v, ok
}

// Text returns the scalar text stored for a field, or the empty string when
// the field is absent or holds a list.
func (vs *ValueSet) Text(name string) string {
	return vs.fields[name].Text
}

// SetText stores a scalar value under a field name.
func (vs *ValueSet) SetText(name string, kind schema.FieldKind, text string) {
	vs.fields[name] = Value{Kind: kind, Text: text}
}

// ListField returns the dynamic list stored for a field, or nil when the
// field is absent or scalar.
func (vs *ValueSet) ListField(name string) *List {
	return vs.fields[name].List
}

// SetList stores a dynamic list under a field name.
func (vs *ValueSet) SetList(name string, list *List) {
	vs.fields[name] = Value{Kind: schema.KindList, List: list}
}

// Clone returns a deep copy so an edit session can be abandoned without
// persisted side effects.
func (vs *ValueSet) Clone() *ValueSet {
	out := NewValueSet(vs.Template)
	for name, value := range vs.fields {
		if value.Kind == schema.KindList {
			out.fields[name] = Value{Kind: value.Kind, List: value.List.Clone()}
			continue
		}
		out.fields[name] = value
	}
	return out
}
