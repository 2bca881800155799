package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/titianlabs/pagekit/pkg/content"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/schema"
)

// pageRecord is the GORM row shape for a page. Content travels as the raw
// JSON blob so the database never needs to understand the template schema.
type pageRecord struct {
	ID           string `gorm:"primaryKey;size:36"`
	Title        string `gorm:"size:255;not null"`
	Slug         string `gorm:"size:255;not null;index"`
	TemplateName string `gorm:"size:64;not null"`
	Status       string `gorm:"size:16;not null;default:draft"`
	ContentJSON  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (pageRecord) TableName() string {
	return "pages"
}

func recordFromPage(p *page.Page) (*pageRecord, error) {
	raw, err := p.Content.Bytes()
	if err != nil {
		return nil, err
	}
	return &pageRecord{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		TemplateName: string(p.TemplateName),
		Status:       string(p.Status),
		ContentJSON:  string(raw),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

func (r *pageRecord) toPage() (*page.Page, error) {
	blob, err := content.ParseBlob([]byte(r.ContentJSON))
	if err != nil {
		return nil, err
	}
	return &page.Page{
		ID:           r.ID,
		Title:        r.Title,
		Slug:         r.Slug,
		TemplateName: schema.TemplateID(r.TemplateName),
		Status:       page.Status(r.Status),
		Content:      blob,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}, nil
}
