package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChatRecordedEvent flows over the in-process bus after every successful
// transcript save and feeds the admin live feed.
type ChatRecordedEvent struct {
	ChatId          uuid.UUID `json:"chatId"`
	Updated         bool      `json:"updated"`
	Phone           *string   `json:"phone,omitempty"`
	Name            *string   `json:"name,omitempty"`
	AskedForContact bool      `json:"askedForContact"`
	MessageCount    int       `json:"messageCount"`
	OccurredAt      time.Time `json:"occurredAt"`
}
