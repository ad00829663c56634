package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatStatus string

const (
	ChatStatusNew        ChatStatus = "new"
	ChatStatusContacted  ChatStatus = "contacted"
	ChatStatusInProgress ChatStatus = "in_progress"
	ChatStatusCompleted  ChatStatus = "completed"
	ChatStatusArchived   ChatStatus = "archived"
)

const DefaultChatLanguage = "ru"

// ChatMetrics are caller-computed signals summarizing transcript content.
// They are always replaced wholesale on save, never merged.
type ChatMetrics struct {
	MessageCount        int
	HasPriceObjection   bool
	HasNegativeResponse bool
	HasName             bool
	AskedForContact     bool
	HasUncertainty      bool
	UncertaintyCount    int
}

type Chat struct {
	Id          uuid.UUID
	Phone       *string
	Name        *string
	ProjectType *string
	Language    string
	Status      ChatStatus
	Notes       *string
	UserAgent   *string
	IpAddress   *string
	Metrics     ChatMetrics
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
