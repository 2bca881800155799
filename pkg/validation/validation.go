// Package validation decides whether a page and its decoded content are
// acceptable to persist, producing ordered field-level reasons that an
// editing surface can attribute to specific inputs, including individual
// dynamic-list rows. Validation never mutates its input and never touches
// storage; blocking persistence on failure is the edit session's job.
package validation

import (
	"fmt"
	"strings"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/schema"
)

// Issue codes surfaced in validation results.
const (
	CodeTitleTooShort   = "title_too_short"
	CodeSlugPattern     = "slug_pattern"
	CodeUnknownTemplate = "unknown_template"
	CodeInvalidStatus   = "invalid_status"
	CodeRequired        = "required"
	CodeUnknownEnumTag  = "unknown_enum_tag"
)

// MinTitleLength is the minimum accepted page title length, matching the
// admin form rule.
const MinTitleLength = 3

// Issue is one field-level validation failure. Path identifies a scalar field
// ("title"), or a list field plus item index plus sub-field
// ("values.2.description") so failures land on a specific row.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result captures a validation outcome. A valid result carries no issues.
type Result struct {
	Issues []Issue `json:"issues,omitempty"`
}

// Valid reports whether the result carries no issues.
func (r Result) Valid() bool {
	return len(r.Issues) == 0
}

// ByPath returns the issues recorded against one field path.
func (r Result) ByPath(path string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Path == path {
			out = append(out, issue)
		}
	}
	return out
}

// Engine validates pages against the template registry's schemas.
type Engine struct {
	registry *schema.Registry
}

// NewEngine creates a validation engine bound to a registry.
func NewEngine(registry *schema.Registry) *Engine {
	return &Engine{registry: registry}
}

// Validate checks a page's metadata and its decoded value set. The returned
// result is ordered: page-level issues first, then content issues in schema
// field order, then list issues in display order.
func (e *Engine) Validate(p page.Page, values *content.ValueSet) Result {
	var result Result
	result.Issues = append(result.Issues, e.validateMeta(p)...)

	s, err := e.registry.SchemaFor(p.TemplateName)
	if err != nil {
		// Already attributed by validateMeta; content cannot be checked
		// against a template the registry does not recognize.
		return result
	}
	if values != nil {
		result.Issues = append(result.Issues, validateContent(s, values)...)
	}
	return result
}

func (e *Engine) validateMeta(p page.Page) []Issue {
	var issues []Issue

	if len(strings.TrimSpace(p.Title)) < MinTitleLength {
		issues = append(issues, Issue{
			Path:    "title",
			Code:    CodeTitleTooShort,
			Message: fmt.Sprintf("title must be at least %d characters", MinTitleLength),
		})
	}

	if !page.ValidSlug(p.Slug) {
		issues = append(issues, Issue{
			Path:    "slug",
			Code:    CodeSlugPattern,
			Message: "slug may only contain lowercase letters, digits, and hyphens, with no leading or trailing hyphen",
		})
	}

	if !e.registry.Has(p.TemplateName) {
		issues = append(issues, Issue{
			Path:    "template_name",
			Code:    CodeUnknownTemplate,
			Message: fmt.Sprintf("template %q is not registered", p.TemplateName),
		})
	}

	if _, ok := page.ParseStatus(string(p.Status)); !ok {
		issues = append(issues, Issue{
			Path:    "status",
			Code:    CodeInvalidStatus,
			Message: fmt.Sprintf("status must be %q or %q", page.StatusDraft, page.StatusPublished),
		})
	}

	return issues
}

func validateContent(s schema.Schema, values *content.ValueSet) []Issue {
	var issues []Issue
	for _, def := range s.Fields {
		if def.Kind != schema.KindList {
			continue
		}
		list := values.ListField(def.Name)
		if list == nil {
			continue
		}
		for index, item := range list.Items() {
			issues = append(issues, validateRecord(def, index, item.Record)...)
		}
	}
	return issues
}

func validateRecord(def schema.FieldDef, index int, record content.Record) []Issue {
	var issues []Issue
	for _, sub := range def.Record {
		path := fmt.Sprintf("%s.%d.%s", def.Name, index, sub.Name)
		value := strings.TrimSpace(record[sub.Name])

		if value == "" {
			issues = append(issues, Issue{
				Path:    path,
				Code:    CodeRequired,
				Message: fmt.Sprintf("%s is required", sub.Name),
			})
			continue
		}
		if sub.Kind == schema.KindEnum && sub.Enum != nil && !sub.Enum.Contains(value) {
			issues = append(issues, Issue{
				Path:    path,
				Code:    CodeUnknownEnumTag,
				Message: fmt.Sprintf("%q is not a member of the %s enum", value, sub.Enum.Name),
			})
		}
	}
	return issues
}
