package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage rows are owned by their chat. ChatId is NOT NULL and
// cascade-deletes with the parent; orphaned rows are a schema violation.
type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender    string    `gorm:"type:chat_sender;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
