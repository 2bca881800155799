// Package editor drives the page editing workflow: load, decode, edit,
// validate, encode, save. Editing surfaces (TUI, HTTP) talk to a Session and
// never touch blobs or the store directly.
package editor

import (
	"context"
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/schema"
	"github.com/titianlabs/pagekit/pkg/store"
	"github.com/titianlabs/pagekit/pkg/validation"
)

// ErrInvalid reports a save attempt that failed validation. The session
// keeps its state so the caller can fix the issues and retry.
var ErrInvalid = errors.New("editor: page failed validation")

// Option configures an Editor.
type Option func(*Editor)

// WithRegistry overrides the template registry. Defaults to the builtin
// template table.
func WithRegistry(registry *schema.Registry) Option {
	return func(e *Editor) {
		if registry != nil {
			e.registry = registry
		}
	}
}

// Editor creates editing sessions bound to a page store.
type Editor struct {
	store    store.PageStore
	registry *schema.Registry
	engine   *validation.Engine
}

// New constructs an Editor.
func New(pages store.PageStore, options ...Option) *Editor {
	e := &Editor{
		store:    pages,
		registry: schema.Builtin(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.engine = validation.NewEngine(e.registry)
	return e
}

// NewPage starts a session for a page that does not exist yet. Every list
// field is seeded with one starter row so the editing surface never shows an
// empty collection.
func (e *Editor) NewPage(template schema.TemplateID) (*Session, error) {
	values, err := content.Decode(e.registry, template, nil)
	if err != nil {
		return nil, err
	}

	sch, err := e.registry.SchemaFor(template)
	if err != nil {
		return nil, err
	}
	for _, field := range sch.Fields {
		if field.Kind != schema.KindList {
			continue
		}
		list := values.ListField(field.Name)
		if list == nil || list.Len() > 0 {
			continue
		}
		list.Append(seedRecord(field))
	}

	return &Session{
		editor: e,
		page: page.Page{
			TemplateName: template,
			Status:       page.StatusDraft,
		},
		values: values,
		isNew:  true,
	}, nil
}

// Open loads an existing page and decodes its content for editing.
func (e *Editor) Open(ctx context.Context, id string) (*Session, error) {
	p, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	values, err := content.Decode(e.registry, p.TemplateName, p.Content)
	if err != nil {
		return nil, err
	}

	return &Session{
		editor:     e,
		page:       *p,
		values:     values,
		slugEdited: true,
	}, nil
}

// seedRecord is the starter row for an empty list. The values record gets
// the site's first principle so a fresh form shows a filled example; other
// records start from their declared defaults.
func seedRecord(field schema.FieldDef) content.Record {
	record := content.Record(field.DefaultRecord())
	if field.Name == "values" {
		record["title"] = "Bermakna"
		record["icon"] = "Heart"
		record["description"] = ""
	}
	return record
}

// Session is one page being edited. It is not safe for concurrent use.
type Session struct {
	editor     *Editor
	page       page.Page
	values     *content.ValueSet
	isNew      bool
	slugEdited bool
}

// Page returns a snapshot of the record under edit, with content encoded
// from the current values.
func (s *Session) Page() page.Page {
	snapshot := s.page
	// Encode only fails for a template the registry does not know, and
	// sessions are always created through the registry. On that unreachable
	// path the snapshot keeps the last persisted content.
	if blob, err := content.Encode(s.editor.registry, s.page.TemplateName, s.values); err == nil {
		snapshot.Content = blob
	}
	return snapshot
}

// Values exposes the decoded value set for editing surfaces that need to
// enumerate fields.
func (s *Session) Values() *content.ValueSet {
	return s.values
}

// SetTitle updates the title. Until the slug is edited explicitly it tracks
// the title through slug derivation.
func (s *Session) SetTitle(title string) {
	s.page.Title = title
	if !s.slugEdited {
		s.page.Slug = page.Slugify(title)
	}
}

// SetSlug pins the slug, stopping derivation from the title.
func (s *Session) SetSlug(slug string) {
	s.page.Slug = slug
	s.slugEdited = true
}

// SetStatus updates the publication state.
func (s *Session) SetStatus(status page.Status) {
	s.page.Status = status
}

// SetText updates a text or rich markup field.
func (s *Session) SetText(field, text string) error {
	sch, err := s.editor.registry.SchemaFor(s.page.TemplateName)
	if err != nil {
		return err
	}
	def, ok := sch.Field(field)
	if !ok {
		return fmt.Errorf("editor: unknown field %q", field)
	}
	if def.Kind == schema.KindList {
		return fmt.Errorf("editor: field %q is a list", field)
	}
	s.values.SetText(field, def.Kind, text)
	return nil
}

// AddListItem appends a default row to a list field and returns its
// transient identity.
func (s *Session) AddListItem(field string) (content.ItemID, error) {
	list, def, err := s.list(field)
	if err != nil {
		return "", err
	}
	return list.Append(content.Record(def.DefaultRecord())), nil
}

// RemoveListItem removes a row by identity. Lists may become empty; whether
// that is acceptable is a validation question, not an editing one.
func (s *Session) RemoveListItem(field string, id content.ItemID) error {
	list, _, err := s.list(field)
	if err != nil {
		return err
	}
	return list.Remove(id)
}

// SetListField updates one sub-field of a row by identity.
func (s *Session) SetListField(field string, id content.ItemID, sub, value string) error {
	list, _, err := s.list(field)
	if err != nil {
		return err
	}
	return list.SetField(id, sub, value)
}

// ListItems returns the rows of a list field in display order.
func (s *Session) ListItems(field string) ([]content.Item, error) {
	list, _, err := s.list(field)
	if err != nil {
		return nil, err
	}
	return list.Items(), nil
}

func (s *Session) list(field string) (*content.List, schema.FieldDef, error) {
	sch, err := s.editor.registry.SchemaFor(s.page.TemplateName)
	if err != nil {
		return nil, schema.FieldDef{}, err
	}
	def, ok := sch.Field(field)
	if !ok || def.Kind != schema.KindList {
		return nil, schema.FieldDef{}, fmt.Errorf("editor: %q is not a list field", field)
	}
	list := s.values.ListField(field)
	if list == nil {
		list = content.NewList()
		s.values.SetList(field, list)
	}
	return list, def, nil
}

// Validate runs the validation engine over the current state.
func (s *Session) Validate() validation.Result {
	return s.editor.engine.Validate(s.page, s.values)
}

// Save validates, encodes, and persists the page. On validation failure the
// issues are returned alongside ErrInvalid and nothing is written.
func (s *Session) Save(ctx context.Context) (validation.Result, error) {
	result := s.Validate()
	if !result.Valid() {
		return result, ErrInvalid
	}

	blob, err := content.Encode(s.editor.registry, s.page.TemplateName, s.values)
	if err != nil {
		return result, fmt.Errorf("editor: encode content: %w", err)
	}
	s.page.Content = blob

	if s.isNew {
		if err := s.editor.store.Create(ctx, &s.page); err != nil {
			return result, err
		}
		s.isNew = false
		klog.V(2).Infof("saved new page %s", s.page.ID)
		return result, nil
	}

	if err := s.editor.store.Update(ctx, &s.page); err != nil {
		return result, err
	}
	klog.V(2).Infof("saved page %s", s.page.ID)
	return result, nil
}
