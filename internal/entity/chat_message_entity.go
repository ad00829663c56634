package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSender string

const (
	ChatSenderBot  ChatSender = "bot"
	ChatSenderUser ChatSender = "user"
)

// ChatMessage is one transcript line. CreatedAt is the caller-supplied
// message time, not server ingest time.
type ChatMessage struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	Sender    ChatSender
	Text      string
	CreatedAt time.Time
}
