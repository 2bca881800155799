package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/titianlabs/pagekit/pkg/render/template"
	"github.com/titianlabs/pagekit/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, files fstest.MapFS, options ...gotemplate.Option) template.TemplateRenderer {
	t.Helper()
	options = append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)
	engine, err := gotemplate.New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRendersNamedTemplate(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": {Data: []byte("Hello {{ name }}!")},
	}
	engine := newEngine(t, files)

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "Nusantara"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Nusantara!" {
		t.Fatalf("rendered = %q", got)
	}
}

func TestEngineRendersInlineContent(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{"noop.tmpl": {Data: []byte("")}})

	got, err := engine.Render("{{ title|upper }}", map[string]any{"title": "beranda"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "BERANDA" {
		t.Fatalf("rendered = %q", got)
	}
}

func TestEngineCustomFilter(t *testing.T) {
	files := fstest.MapFS{
		"page.tmpl": {Data: []byte("{{ body|shout }}")},
	}
	engine := newEngine(t, files, gotemplate.WithFilter("shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s) + "!", nil
	}))

	got, err := engine.RenderTemplate("page", map[string]any{"body": "halo"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "HALO!" {
		t.Fatalf("rendered = %q", got)
	}
}

func TestEngineGlobalContext(t *testing.T) {
	files := fstest.MapFS{
		"footer.tmpl": {Data: []byte("{{ site_name }}")},
	}
	engine := newEngine(t, files, gotemplate.WithGlobalData(map[string]any{
		"site_name": "Titian Nusantara",
	}))

	got, err := engine.RenderTemplate("footer", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Titian Nusantara" {
		t.Fatalf("rendered = %q", got)
	}
}

func TestEngineRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected an error without a template source")
	}
}

func TestEngineMissingTemplate(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{"known.tmpl": {Data: []byte("x")}})
	if _, err := engine.RenderTemplate("unknown", nil); err == nil {
		t.Fatalf("expected an error for a missing template")
	}
}

func TestEngineRejectsDuplicateFilter(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{"noop.tmpl": {Data: []byte("")}})
	echo := func(input any, _ any) (any, error) { return input, nil }

	if err := engine.RegisterFilter("stamp", echo); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := engine.RegisterFilter("stamp", echo); err == nil {
		t.Fatalf("expected an error re-registering %q", "stamp")
	}
	// Built-in pongo2 filters cannot be shadowed either.
	if err := engine.RegisterFilter("upper", echo); err == nil {
		t.Fatalf("expected an error shadowing a built-in filter")
	}
}
