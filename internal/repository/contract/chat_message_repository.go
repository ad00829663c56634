package contract

import (
	"context"

	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	CreateBatch(ctx context.Context, messages []*entity.ChatMessage) error
	DeleteByChatId(ctx context.Context, chatId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// LastPerChat returns the most recent message for each of the given
	// chats in a single query.
	LastPerChat(ctx context.Context, chatIds []uuid.UUID) (map[uuid.UUID]*entity.ChatMessage, error)
}
