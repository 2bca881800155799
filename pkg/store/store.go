// Package store persists page records. The interface is storage-agnostic;
// the default implementation keeps pages in SQLite through GORM.
package store

import (
	"context"
	"errors"

	"github.com/titianlabs/pagekit/pkg/page"
)

var (
	// ErrNotFound reports a lookup for a page that does not exist or was
	// soft-deleted.
	ErrNotFound = errors.New("store: page not found")
	// ErrSlugTaken reports a create or update whose slug collides with
	// another live page.
	ErrSlugTaken = errors.New("store: slug already in use")
)

// PageStore is the persistence contract for page records.
type PageStore interface {
	GetByID(ctx context.Context, id string) (*page.Page, error)
	GetBySlug(ctx context.Context, slug string) (*page.Page, error)
	List(ctx context.Context) ([]page.Page, error)
	Create(ctx context.Context, p *page.Page) error
	Update(ctx context.Context, p *page.Page) error
	Delete(ctx context.Context, id string) error
}
