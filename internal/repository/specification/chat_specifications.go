package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByChatID filters messages by their owning chat.
type ByChatID struct {
	ChatID uuid.UUID
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

// SearchTerm matches the term case-insensitively against name, phone and
// project type, ANDed with whatever other filters are applied.
type SearchTerm struct {
	Term string
}

func (s SearchTerm) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("(name ILIKE ? OR phone ILIKE ? OR project_type ILIKE ?)", pattern, pattern, pattern)
}

// CreatedFrom is the inclusive lower bound on created_at.
type CreatedFrom struct {
	From time.Time
}

func (s CreatedFrom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.From)
}

// CreatedTo is the inclusive upper bound on created_at.
type CreatedTo struct {
	To time.Time
}

func (s CreatedTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at <= ?", s.To)
}

// PhonePresent partitions chats on whether a phone was captured.
type PhonePresent struct {
	Present bool
}

func (s PhonePresent) Apply(db *gorm.DB) *gorm.DB {
	if s.Present {
		return db.Where("phone IS NOT NULL")
	}
	return db.Where("phone IS NULL")
}
