// Package tui is the terminal editing surface. It walks an editing session
// field by field using survey prompts, including the row-based flow for
// list fields.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/editor"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/schema"
	"github.com/titianlabs/pagekit/pkg/validation"
)

// Option configures the flow.
type Option func(*Flow)

// WithDriver substitutes the prompt driver. Tests use a scripted driver.
func WithDriver(driver PromptDriver) Option {
	return func(f *Flow) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithRegistry overrides the template registry used to enumerate fields.
func WithRegistry(registry *schema.Registry) Option {
	return func(f *Flow) {
		if registry != nil {
			f.registry = registry
		}
	}
}

// Flow prompts through every field of a page and saves it.
type Flow struct {
	driver   PromptDriver
	registry *schema.Registry
}

// New constructs a Flow. Without options it talks to the real terminal.
func New(options ...Option) *Flow {
	f := &Flow{
		driver:   NewSurveyDriver(),
		registry: schema.Builtin(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Run edits the session interactively and attempts to save it. On
// validation failure the issues are printed and returned with the error;
// the session keeps its edits so the caller can run the flow again.
func (f *Flow) Run(ctx context.Context, session *editor.Session) (validation.Result, error) {
	if err := f.editMeta(ctx, session); err != nil {
		return validation.Result{}, err
	}
	if err := f.editContent(ctx, session); err != nil {
		return validation.Result{}, err
	}

	result, err := session.Save(ctx)
	if errors.Is(err, editor.ErrInvalid) {
		for _, issue := range result.Issues {
			if infoErr := f.driver.Info(ctx, fmt.Sprintf("%s: %s", issue.Path, issue.Message)); infoErr != nil {
				return result, infoErr
			}
		}
	}
	return result, err
}

func (f *Flow) editMeta(ctx context.Context, session *editor.Session) error {
	current := session.Page()

	title, err := f.driver.Input(ctx, InputConfig{
		Message: "Title",
		Default: current.Title,
	})
	if err != nil {
		return err
	}
	session.SetTitle(title)

	derived := session.Page().Slug
	slug, err := f.driver.Input(ctx, InputConfig{
		Message: "Slug",
		Default: derived,
		Help:    "lowercase letters, digits, and hyphens",
	})
	if err != nil {
		return err
	}
	if slug != derived {
		session.SetSlug(slug)
	}

	statuses := []string{string(page.StatusDraft), string(page.StatusPublished)}
	defaultIndex := 0
	if current.Status == page.StatusPublished {
		defaultIndex = 1
	}
	choice, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Status",
		Options:      statuses,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if status, ok := page.ParseStatus(statuses[choice]); ok {
		session.SetStatus(status)
	}
	return nil
}

func (f *Flow) editContent(ctx context.Context, session *editor.Session) error {
	sch, err := f.registry.SchemaFor(session.Page().TemplateName)
	if err != nil {
		return err
	}

	for _, field := range sch.Fields {
		switch field.Kind {
		case schema.KindList:
			if err := f.editList(ctx, session, field); err != nil {
				return err
			}
		case schema.KindRichMarkup:
			text, err := f.driver.TextArea(ctx, TextAreaConfig{
				Message: field.Label,
				Default: session.Values().Text(field.Name),
			})
			if err != nil {
				return err
			}
			if err := session.SetText(field.Name, text); err != nil {
				return err
			}
		default:
			text, err := f.driver.Input(ctx, InputConfig{
				Message: field.Label,
				Default: session.Values().Text(field.Name),
			})
			if err != nil {
				return err
			}
			if err := session.SetText(field.Name, text); err != nil {
				return err
			}
		}
	}
	return nil
}

const (
	listActionAdd    = "add row"
	listActionEdit   = "edit row"
	listActionRemove = "remove row"
	listActionDone   = "done"
)

func (f *Flow) editList(ctx context.Context, session *editor.Session, field schema.FieldDef) error {
	for {
		items, err := session.ListItems(field.Name)
		if err != nil {
			return err
		}

		actions := []string{listActionAdd}
		if len(items) > 0 {
			actions = append(actions, listActionEdit, listActionRemove)
		}
		actions = append(actions, listActionDone)

		choice, err := f.driver.Select(ctx, SelectConfig{
			Message: fmt.Sprintf("%s (%d rows)", field.Label, len(items)),
			Options: actions,
		})
		if err != nil {
			return err
		}

		switch actions[choice] {
		case listActionAdd:
			id, err := session.AddListItem(field.Name)
			if err != nil {
				return err
			}
			if err := f.editRow(ctx, session, field, id); err != nil {
				return err
			}
		case listActionEdit:
			id, err := f.pickRow(ctx, field, items)
			if err != nil {
				return err
			}
			if err := f.editRow(ctx, session, field, id); err != nil {
				return err
			}
		case listActionRemove:
			id, err := f.pickRow(ctx, field, items)
			if err != nil {
				return err
			}
			if err := session.RemoveListItem(field.Name, id); err != nil {
				return err
			}
		case listActionDone:
			return nil
		}
	}
}

// pickRow lets the operator choose a row by its position and leading text.
func (f *Flow) pickRow(ctx context.Context, field schema.FieldDef, items []content.Item) (content.ItemID, error) {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = fmt.Sprintf("#%d %s", i+1, rowLabel(field, item.Record))
	}
	choice, err := f.driver.Select(ctx, SelectConfig{
		Message: "Row",
		Options: labels,
	})
	if err != nil {
		return "", err
	}
	if choice < 0 || choice >= len(items) {
		return "", fmt.Errorf("tui: row choice out of range")
	}
	return items[choice].ID, nil
}

func rowLabel(field schema.FieldDef, record content.Record) string {
	for _, sub := range field.Record {
		if sub.Kind == schema.KindText && record[sub.Name] != "" {
			return record[sub.Name]
		}
	}
	return "(empty)"
}

func (f *Flow) editRow(ctx context.Context, session *editor.Session, field schema.FieldDef, id content.ItemID) error {
	items, err := session.ListItems(field.Name)
	if err != nil {
		return err
	}
	var record content.Record
	for _, item := range items {
		if item.ID == id {
			record = item.Record
			break
		}
	}

	for _, sub := range field.Record {
		var value string
		if sub.Kind == schema.KindEnum && sub.Enum != nil {
			defaultIndex := 0
			for i, option := range sub.Enum.Values {
				if option == record[sub.Name] {
					defaultIndex = i
					break
				}
			}
			choice, err := f.driver.Select(ctx, SelectConfig{
				Message:      sub.Label,
				Options:      sub.Enum.Values,
				DefaultIndex: defaultIndex,
			})
			if err != nil {
				return err
			}
			value = sub.Enum.Values[choice]
		} else {
			value, err = f.driver.Input(ctx, InputConfig{
				Message: sub.Label,
				Default: record[sub.Name],
			})
			if err != nil {
				return err
			}
		}
		if err := session.SetListField(field.Name, id, sub.Name, value); err != nil {
			return err
		}
	}
	return nil
}
