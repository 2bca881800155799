package render_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/render"
	"github.com/titianlabs/pagekit/pkg/schema"
)

type captureRenderer struct {
	options render.Options
	body    string
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, p page.Page, _ *content.ValueSet, options render.Options) ([]byte, error) {
	r.options = options
	if r.body != "" {
		return []byte(r.body), nil
	}
	return []byte(p.Title), nil
}

func contactPage() page.Page {
	return page.Page{
		Title:        "Hubungi Kami",
		Slug:         "hubungi-kami",
		TemplateName: schema.TemplateContact,
		Status:       page.StatusDraft,
	}
}

func TestDispatchToRegisteredStrategy(t *testing.T) {
	renderer := &captureRenderer{body: "home body"}
	registry := render.NewRegistry()
	registry.MustRegister(schema.TemplateHome, renderer)

	dispatcher := render.NewDispatcher(render.WithRegistry(registry))

	p := page.Page{Title: "Beranda", TemplateName: schema.TemplateHome}
	presentation, err := dispatcher.Render(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if presentation.Fallback {
		t.Fatalf("registered template must not take the fallback path")
	}
	if string(presentation.Body) != "home body" {
		t.Fatalf("body = %q", presentation.Body)
	}
	if presentation.ContentType != "text/plain" {
		t.Fatalf("content type = %q", presentation.ContentType)
	}
}

func TestDispatchFallsBackForUnregisteredTemplate(t *testing.T) {
	dispatcher := render.NewDispatcher()

	presentation, err := dispatcher.Render(context.Background(), contactPage(), nil)
	if err != nil {
		t.Fatalf("fallback render must not fail: %v", err)
	}
	if !presentation.Fallback {
		t.Fatalf("expected the fallback path for contact")
	}
	body := string(presentation.Body)
	if !strings.Contains(body, "Hubungi Kami") {
		t.Fatalf("fallback body must surface the page title, got:\n%s", body)
	}
	if !strings.Contains(body, "not implemented") {
		t.Fatalf("fallback body must carry the unimplemented notice, got:\n%s", body)
	}
}

func TestDispatchRegistryDuplicates(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(schema.TemplateHome, &captureRenderer{}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := registry.Register(schema.TemplateHome, &captureRenderer{}); err == nil {
		t.Fatalf("duplicate registration must fail")
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
}

func (s *stubThemeSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, nil
}

func TestDispatchResolvesTheme(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "nusantara",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#0f5132"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/nusantara",
			Files:  map[string]string{"site.stylesheet": "site.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#9ef01a"}},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "nusantara",
		Variant:  "dark",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(schema.TemplateHome, renderer)

	dispatcher := render.NewDispatcher(
		render.WithRegistry(registry),
		render.WithThemeSelector(selector, "nusantara", "dark"),
	)

	p := page.Page{Title: "Beranda", TemplateName: schema.TemplateHome}
	if _, err := dispatcher.Render(context.Background(), p, nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Tokens["brand"] != "#9ef01a" {
		t.Fatalf("variant token not merged, got %q", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#9ef01a" {
		t.Fatalf("css vars not derived from tokens, got %q", cfg.CSSVars["--brand"])
	}
	if got := cfg.AssetURL("site.stylesheet"); got != "/assets/themes/nusantara/site.css" {
		t.Fatalf("asset url = %q", got)
	}
}
