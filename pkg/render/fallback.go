package render

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
)

// FallbackRenderer is the generic degradation path for template identifiers
// without a registered strategy. It surfaces the page title and a plain
// notice that the template is not implemented yet, so an editor can always
// see something for a draft page before its presentation is built.
type FallbackRenderer struct{}

// NewFallbackRenderer constructs the generic fallback strategy.
func NewFallbackRenderer() *FallbackRenderer {
	return &FallbackRenderer{}
}

func (r *FallbackRenderer) Name() string {
	return "fallback"
}

func (r *FallbackRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *FallbackRenderer) Render(ctx context.Context, p page.Page, _ *content.ValueSet, _ Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("<section class=\"page-fallback\">\n")
	fmt.Fprintf(&buf, "  <h1>%s</h1>\n", html.EscapeString(p.Title))
	fmt.Fprintf(&buf, "  <p>Template %q is not implemented yet.</p>\n", p.TemplateName)
	buf.WriteString("</section>\n")
	return buf.Bytes(), nil
}
