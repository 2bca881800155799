package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/titianlabs/pagekit/pkg/page"
)

// GormStore persists pages through GORM. Deletes are soft so slugs of
// removed pages can be reused while history stays queryable.
type GormStore struct {
	db *gorm.DB
}

var _ PageStore = (*GormStore)(nil)

// Open connects to a SQLite database and migrates the pages table. Use
// ":memory:" for an in-memory database.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	return NewGormStore(db)
}

// NewGormStore wraps an existing GORM connection and runs migrations.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if db == nil {
		return nil, errors.New("store: db is required")
	}
	if err := db.AutoMigrate(&pageRecord{}); err != nil {
		return nil, fmt.Errorf("store: migrate pages: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) GetByID(ctx context.Context, id string) (*page.Page, error) {
	var record pageRecord
	result := s.db.WithContext(ctx).First(&record, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return record.toPage()
}

func (s *GormStore) GetBySlug(ctx context.Context, slug string) (*page.Page, error) {
	var record pageRecord
	result := s.db.WithContext(ctx).First(&record, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return record.toPage()
}

// List returns live pages, newest first.
func (s *GormStore) List(ctx context.Context) ([]page.Page, error) {
	var records []pageRecord
	result := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	pages := make([]page.Page, 0, len(records))
	for i := range records {
		p, err := records[i].toPage()
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, nil
}

// Create inserts a page. A missing ID gets a fresh UUID; CreatedAt and
// UpdatedAt are stamped with the current time. The page argument is updated
// in place with the generated fields.
func (s *GormStore) Create(ctx context.Context, p *page.Page) error {
	if p == nil {
		return errors.New("store: page is required")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	taken, err := s.slugTaken(ctx, p.Slug, p.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %s", ErrSlugTaken, p.Slug)
	}

	record, err := recordFromPage(p)
	if err != nil {
		return fmt.Errorf("store: encode content: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}
	klog.V(2).Infof("created page %s slug=%s template=%s", p.ID, p.Slug, p.TemplateName)
	return nil
}

// Update saves a page that already exists. UpdatedAt is refreshed; CreatedAt
// keeps its stored value.
func (s *GormStore) Update(ctx context.Context, p *page.Page) error {
	if p == nil || p.ID == "" {
		return errors.New("store: page with id is required")
	}

	existing, err := s.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}

	taken, err := s.slugTaken(ctx, p.Slug, p.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %s", ErrSlugTaken, p.Slug)
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	record, err := recordFromPage(p)
	if err != nil {
		return fmt.Errorf("store: encode content: %w", err)
	}
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return err
	}
	klog.V(2).Infof("updated page %s slug=%s", p.ID, p.Slug)
	return nil
}

// Delete soft-deletes a page. Deleting an unknown ID reports ErrNotFound.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&pageRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	klog.V(2).Infof("deleted page %s", id)
	return nil
}

// slugTaken reports whether another live page already holds the slug.
func (s *GormStore) slugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&pageRecord{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
