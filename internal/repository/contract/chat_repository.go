package contract

import (
	"context"

	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/repository/specification"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	Update(ctx context.Context, chat *entity.Chat) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountGroupedBy(ctx context.Context, column string) (map[string]int64, error)
	AverageMessageCount(ctx context.Context) (float64, error)
}
