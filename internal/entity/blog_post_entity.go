package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocalizedText holds per-language variants keyed by language code (ru/en/kz).
type LocalizedText map[string]string

type BlogPost struct {
	Id        uuid.UUID
	Slug      string
	Title     LocalizedText
	Content   LocalizedText
	Excerpt   LocalizedText
	Category  *string
	Keywords  []string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
