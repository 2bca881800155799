package schema

// IconEnum is the closed icon set shared by the "values" record on the home
// and about templates. Leaf is the substitution tag: the public site maps
// unknown icons onto Leaf, so decoded defaults follow the same choice.
var IconEnum = EnumDef{
	Name:    "icon",
	Values:  []string{"Heart", "Scale", "Leaf", "Compass", "Star", "Shield"},
	Default: "Leaf",
}

func valuesField() FieldDef {
	return FieldDef{
		Name:  "values",
		Kind:  KindList,
		Label: "Company values",
		Record: []FieldDef{
			{Name: "title", Kind: KindText, Label: "Title"},
			{Name: "icon", Kind: KindEnum, Label: "Icon", Enum: &IconEnum},
			{Name: "description", Kind: KindText, Label: "Description"},
		},
	}
}

func homeSchema() Schema {
	return Schema{
		Template: TemplateHome,
		Fields: []FieldDef{
			{Name: "hero_title", Kind: KindText, Label: "Hero title"},
			{Name: "hero_subtitle", Kind: KindText, Label: "Hero subtitle"},
			{Name: "manifesto_quote", Kind: KindRichMarkup, Label: "Manifesto quote"},
			valuesField(),
		},
	}
}

func aboutSchema() Schema {
	return Schema{
		Template: TemplateAbout,
		Fields: []FieldDef{
			{Name: "hero_title", Kind: KindText, Label: "Hero title"},
			{Name: "who_we_are", Kind: KindRichMarkup, Label: "Who we are"},
			{Name: "why_us", Kind: KindRichMarkup, Label: "Why us"},
			{Name: "manifesto_intro", Kind: KindRichMarkup, Label: "Manifesto intro"},
			{Name: "vision", Kind: KindRichMarkup, Label: "Vision"},
			{Name: "mission", Kind: KindRichMarkup, Label: "Mission"},
			{Name: "timeline_summary", Kind: KindRichMarkup, Label: "Timeline summary"},
			{
				Name:  "timeline_details",
				Kind:  KindList,
				Label: "Timeline entries",
				Record: []FieldDef{
					{Name: "year", Kind: KindText, Label: "Year"},
					{Name: "title", Kind: KindText, Label: "Title"},
					{Name: "description", Kind: KindText, Label: "Description"},
				},
			},
			valuesField(),
		},
	}
}

// contactSchema reserves the identifier without declaring any editable
// fields. Decoding yields an empty value set and render dispatch falls back.
func contactSchema() Schema {
	return Schema{Template: TemplateContact}
}

// Builtin returns a registry populated with the fixed template table: home,
// about, and the reserved contact identifier.
func Builtin() *Registry {
	reg := NewRegistry()
	reg.MustRegister(homeSchema())
	reg.MustRegister(aboutSchema())
	reg.MustRegister(contactSchema())
	return reg
}
