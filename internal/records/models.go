package records

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Article is the persisted row of one journal article.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID        uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	Status    string          `bun:"status,notnull,default:'draft'" json:"status"`
	SortIndex int             `bun:"sort_index,notnull,default:0" json:"sort_index"`
	Content   json.RawMessage `bun:"content,type:jsonb,notnull" json:"content"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Project is the persisted row of one portfolio project.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID        uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	Status    string          `bun:"status,notnull,default:'draft'" json:"status"`
	SortIndex int             `bun:"sort_index,notnull,default:0" json:"sort_index"`
	Content   json.RawMessage `bun:"content,type:jsonb,notnull" json:"content"`
	CreatedAt time.Time       `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
