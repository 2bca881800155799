// Package pagekit is the convenience surface over the template-driven page
// engine: the fixed template table, the content codec, validation, and
// render dispatch, re-exported for callers that do not need the
// sub-packages directly.
package pagekit

import (
	"context"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/editor"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/render"
	"github.com/titianlabs/pagekit/pkg/renderers/site"
	"github.com/titianlabs/pagekit/pkg/schema"
	"github.com/titianlabs/pagekit/pkg/store"
	"github.com/titianlabs/pagekit/pkg/validation"
)

// Page is the record exchanged with the page store.
type Page = page.Page

// Blob is the schema-free JSON object persisted in a page's content column.
type Blob = content.Blob

// ValueSet is the structured editing model decoded from a blob.
type ValueSet = content.ValueSet

// Issue is one validation finding with its content path.
type Issue = validation.Issue

// Presentation is the rendered output for a page.
type Presentation = render.Presentation

// TemplateID names a member of the closed template set.
type TemplateID = schema.TemplateID

const (
	TemplateHome    = schema.TemplateHome
	TemplateAbout   = schema.TemplateAbout
	TemplateContact = schema.TemplateContact
)

// Templates returns the builtin template registry.
func Templates() *schema.Registry {
	return schema.Builtin()
}

// Decode transforms a persisted blob into the editing model for a template.
func Decode(template schema.TemplateID, blob content.Blob) (*content.ValueSet, error) {
	return content.Decode(schema.Builtin(), template, blob)
}

// Encode transforms the editing model back into a persistable blob.
func Encode(template schema.TemplateID, values *content.ValueSet) (content.Blob, error) {
	return content.Encode(schema.Builtin(), template, values)
}

// Validate checks a page and its editing model against the builtin rules.
func Validate(p page.Page, values *content.ValueSet) validation.Result {
	return validation.NewEngine(schema.Builtin()).Validate(p, values)
}

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	return page.Slugify(title)
}

// NewEditor builds an editing workflow over a page store.
func NewEditor(pages store.PageStore, options ...editor.Option) *editor.Editor {
	return editor.New(pages, options...)
}

// Render renders a page with the site presentation strategies, falling back
// to the generic presentation for templates without one.
func Render(ctx context.Context, p page.Page, options ...render.Option) (render.Presentation, error) {
	registry := render.NewRegistry()
	if err := site.Register(registry); err != nil {
		return render.Presentation{}, err
	}

	values, err := Decode(p.TemplateName, p.Content)
	if err != nil {
		return render.Presentation{}, err
	}

	options = append([]render.Option{render.WithRegistry(registry)}, options...)
	return render.NewDispatcher(options...).Render(ctx, p, values)
}
