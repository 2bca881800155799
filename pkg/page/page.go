// Package page defines the page record exchanged with the external store and
// the slug derivation rule shared by every editing surface.
package page

import (
	"time"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/schema"
)

// Status is the publication state of a page.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// ParseStatus maps a raw string onto the status enum.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusDraft, StatusPublished:
		return Status(raw), true
	default:
		return "", false
	}
}

// Page is the record surface exchanged with the external page store. Content
// holds the schema-free blob persisted as a single JSON document; everything
// typed about it lives in the codec, not here.
type Page struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Slug         string            `json:"slug"`
	TemplateName schema.TemplateID `json:"template_name"`
	Status       Status            `json:"status"`
	Content      content.Blob      `json:"content_json"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
