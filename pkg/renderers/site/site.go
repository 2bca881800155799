package site

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/render"
	"github.com/titianlabs/pagekit/pkg/render/template"
	"github.com/titianlabs/pagekit/pkg/render/template/gotemplate"
	"github.com/titianlabs/pagekit/pkg/schema"
)

// Option configures a site strategy before construction.
type Option func(*Strategy)

// WithEngine substitutes the template engine. Tests use this to inject a
// recording engine; production code normally keeps the embedded templates.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(s *Strategy) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithPolicy overrides the sanitize policy applied to rich markup fields.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(s *Strategy) {
		if policy != nil {
			s.policy = policy
		}
	}
}

// Strategy renders one template identifier into public HTML. Construct
// instances through NewHome and NewAbout.
type Strategy struct {
	template schema.TemplateID
	registry *schema.Registry
	engine   template.TemplateRenderer
	policy   *bluemonday.Policy
	fallback map[string]string
}

// NewHome builds the landing page strategy.
func NewHome(options ...Option) (*Strategy, error) {
	return newStrategy(schema.TemplateHome, homeFallbackText, options...)
}

// NewAbout builds the organization profile strategy.
func NewAbout(options ...Option) (*Strategy, error) {
	return newStrategy(schema.TemplateAbout, aboutFallbackText, options...)
}

// Register wires the home and about strategies into a render registry. The
// contact identifier stays unregistered on purpose so it takes the generic
// fallback path.
func Register(registry *render.Registry, options ...Option) error {
	home, err := NewHome(options...)
	if err != nil {
		return err
	}
	about, err := NewAbout(options...)
	if err != nil {
		return err
	}
	if err := registry.Register(schema.TemplateHome, home); err != nil {
		return err
	}
	return registry.Register(schema.TemplateAbout, about)
}

func newStrategy(id schema.TemplateID, fallback map[string]string, options ...Option) (*Strategy, error) {
	s := &Strategy{
		template: id,
		registry: schema.Builtin(),
		policy:   bluemonday.UGCPolicy(),
		fallback: fallback,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(templateFS))
		if err != nil {
			return nil, fmt.Errorf("site: build template engine: %w", err)
		}
		s.engine = engine
	}
	return s, nil
}

func (s *Strategy) Name() string {
	return "site/" + string(s.template)
}

func (s *Strategy) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the view context from the decoded value set and executes the
// embedded template for this strategy's identifier.
func (s *Strategy) Render(ctx context.Context, p page.Page, values *content.ValueSet, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if values == nil {
		decoded, err := content.Decode(s.registry, s.template, nil)
		if err != nil {
			return nil, fmt.Errorf("site: decode empty content: %w", err)
		}
		values = decoded
	}

	data := map[string]any{
		"page": map[string]any{
			"title":  p.Title,
			"slug":   p.Slug,
			"status": string(p.Status),
		},
		"content": s.viewContent(values),
		"theme":   themeContext(options.Theme),
	}

	rendered, err := s.engine.RenderTemplate("templates/"+string(s.template), data)
	if err != nil {
		return nil, fmt.Errorf("site: render %s: %w", s.template, err)
	}
	return []byte(rendered), nil
}

// viewContent flattens the value set into template data, substituting the
// placeholder copy for empty text and sanitizing rich markup fields.
func (s *Strategy) viewContent(values *content.ValueSet) map[string]any {
	out := make(map[string]any)

	sch, err := s.registry.SchemaFor(s.template)
	if err != nil {
		return out
	}

	for _, field := range sch.Fields {
		switch field.Kind {
		case schema.KindList:
			out[field.Name] = s.viewList(values, field)
		case schema.KindRichMarkup:
			out[field.Name] = s.policy.Sanitize(s.textOrFallback(values, field.Name))
		default:
			out[field.Name] = s.textOrFallback(values, field.Name)
		}
	}
	return out
}

func (s *Strategy) textOrFallback(values *content.ValueSet, name string) string {
	if text := values.Text(name); text != "" {
		return text
	}
	return s.fallback[name]
}

func (s *Strategy) viewList(values *content.ValueSet, field schema.FieldDef) []map[string]string {
	list := values.ListField(field.Name)
	if list == nil || list.Len() == 0 {
		switch field.Name {
		case "values":
			return fallbackValues()
		case "timeline_details":
			return fallbackTimeline()
		}
		return nil
	}

	items := list.Items()
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		row := make(map[string]string, len(field.Record))
		for _, sub := range field.Record {
			value := item.Record[sub.Name]
			if sub.Kind == schema.KindEnum && sub.Enum != nil && !sub.Enum.Contains(value) {
				value = sub.Enum.Default
			}
			row[sub.Name] = value
		}
		out = append(out, row)
	}
	return out
}

func themeContext(cfg *render.ThemeConfig) map[string]any {
	if cfg == nil {
		return map[string]any{"enabled": false}
	}

	// Iterate in sorted order so rendered output is stable across runs.
	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var style strings.Builder
	for _, name := range names {
		style.WriteString(name + ":" + cfg.CSSVars[name] + ";")
	}

	stylesheet := ""
	if cfg.AssetURL != nil {
		stylesheet = cfg.AssetURL("site.stylesheet")
	}

	return map[string]any{
		"enabled":    true,
		"name":       cfg.Theme,
		"variant":    cfg.Variant,
		"style":      style.String(),
		"stylesheet": stylesheet,
	}
}
