package media

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Row is the persisted form of one media item.
type Row struct {
	bun.BaseModel `bun:"table:media_items,alias:mi"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Name        string         `bun:"name,notnull" json:"name"`
	Title       string         `bun:"title,notnull" json:"title"`
	Description string         `bun:"description" json:"description"`
	URL         string         `bun:"url,notnull" json:"url"`
	Path        sql.NullString `bun:"path" json:"path"`
	UploadedAt  time.Time      `bun:"uploaded_at,notnull" json:"uploaded_at"`
	Type        string         `bun:"type,notnull" json:"type"`
	Category    string         `bun:"category,notnull" json:"category"`
}

func (r *Row) toItem() Item {
	item := Item{
		ID:          r.ID,
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		UploadedAt:  r.UploadedAt,
		Type:        Type(r.Type),
		Category:    Category(r.Category),
	}
	if r.Path.Valid {
		item.Path = r.Path.String
	}
	return item
}

func rowFromItem(item Item) *Row {
	row := &Row{
		ID:          item.ID,
		Name:        item.Name,
		Title:       item.Title,
		Description: item.Description,
		URL:         item.URL,
		UploadedAt:  item.UploadedAt,
		Type:        string(item.Type),
		Category:    string(item.Category),
	}
	if item.Path != "" {
		row.Path = sql.NullString{String: item.Path, Valid: true}
	}
	return row
}
