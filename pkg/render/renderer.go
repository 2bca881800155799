// Package render selects a presentation strategy for a page based on its
// template identifier. Strategies register against the closed template set.
// Identifiers without a registered strategy, including templates the schema
// registry knows but nobody has built a presentation for yet, degrade to a
// generic fallback that surfaces the page title instead of failing the page
// load.
package render

import (
	"context"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/schema"
)

// Renderer converts a page and its decoded value set into a byte
// representation (HTML for the built-in site renderer).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p page.Page, values *content.ValueSet, options Options) ([]byte, error)
}

// Presentation is the dispatch result: the rendered body plus enough metadata
// for a caller to serve it. Fallback marks the generic degradation path taken
// when no strategy was registered for the page's template.
type Presentation struct {
	Template    schema.TemplateID
	ContentType string
	Body        []byte
	Fallback    bool
}
