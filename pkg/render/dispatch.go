package render

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
)

// Option customises the dispatcher configuration.
type Option func(*Dispatcher)

// WithRegistry injects a strategy registry. Without it the dispatcher starts
// empty and every page takes the fallback path.
func WithRegistry(registry *Registry) Option {
	return func(d *Dispatcher) {
		if registry != nil {
			d.registry = registry
		}
	}
}

// WithFallback overrides the generic fallback renderer.
func WithFallback(renderer Renderer) Option {
	return func(d *Dispatcher) {
		if renderer != nil {
			d.fallback = renderer
		}
	}
}

// WithThemeSelector wires a go-theme selector so renderers receive resolved
// tokens and asset URLs through Options.Theme.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(d *Dispatcher) {
		d.themeSelector = selector
		d.themeName = name
		d.themeVariant = variant
	}
}

// Dispatcher routes a page to the rendering strategy registered for its
// template identifier, falling back to the generic presentation when none is
// registered. The fallback is a deliberate degradation path, not an error.
type Dispatcher struct {
	registry      *Registry
	fallback      Renderer
	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// NewDispatcher constructs a dispatcher applying any provided options.
func NewDispatcher(options ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		fallback: NewFallbackRenderer(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Render selects the strategy for the page's template and executes it. Pages
// whose template has no registered strategy render through the fallback; a
// renderer failure is returned as an error, never silently downgraded.
func (d *Dispatcher) Render(ctx context.Context, p page.Page, values *content.ValueSet) (Presentation, error) {
	if ctx == nil {
		return Presentation{}, errors.New("render: context is required")
	}

	options, err := d.renderOptions()
	if err != nil {
		return Presentation{}, err
	}

	renderer, registered := d.registry.Get(p.TemplateName)
	if !registered {
		renderer = d.fallback
	}

	body, err := renderer.Render(ctx, p, values, options)
	if err != nil {
		return Presentation{}, fmt.Errorf("render: %s renderer: %w", renderer.Name(), err)
	}

	return Presentation{
		Template:    p.TemplateName,
		ContentType: renderer.ContentType(),
		Body:        body,
		Fallback:    !registered,
	}, nil
}

func (d *Dispatcher) renderOptions() (Options, error) {
	if d.themeSelector == nil {
		return Options{}, nil
	}

	selection, err := d.themeSelector.Select(d.themeName, d.themeVariant)
	if err != nil {
		return Options{}, fmt.Errorf("render: select theme %q: %w", d.themeName, err)
	}
	return Options{Theme: themeConfig(selection)}, nil
}

func themeConfig(selection *theme.Selection) *ThemeConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	assets := manifest.Assets.Files
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		if len(variant.Assets.Files) > 0 {
			merged := make(map[string]string, len(assets)+len(variant.Assets.Files))
			for key, value := range assets {
				merged[key] = value
			}
			for key, value := range variant.Assets.Files {
				merged[key] = value
			}
			assets = merged
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := manifest.Assets.Prefix
	return &ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
		AssetURL: func(name string) string {
			file, ok := assets[name]
			if !ok {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}
