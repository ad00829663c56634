package implementation

import (
	"context"

	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/mapper"
	"chatlog-admin-be/internal/model"
	"chatlog-admin-be/internal/repository/contract"
	"chatlog-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatMessageRepositoryImpl) CreateBatch(ctx context.Context, messages []*entity.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	models := make([]*model.ChatMessage, len(messages))
	for i, msg := range messages {
		models[i] = r.mapper.ChatMessageToModel(msg)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*messages[i] = *r.mapper.ChatMessageToEntity(m)
	}
	return nil
}

func (r *ChatMessageRepositoryImpl) DeleteByChatId(ctx context.Context, chatId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("chat_id = ?", chatId).Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var models []*model.ChatMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatMessageToEntity(m)
	}
	return entities, nil
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// LastPerChat fetches the newest message of every listed chat in one
// round trip. Id breaks created_at ties deterministically.
func (r *ChatMessageRepositoryImpl) LastPerChat(ctx context.Context, chatIds []uuid.UUID) (map[uuid.UUID]*entity.ChatMessage, error) {
	result := make(map[uuid.UUID]*entity.ChatMessage, len(chatIds))
	if len(chatIds) == 0 {
		return result, nil
	}

	var models []*model.ChatMessage
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (chat_id) * FROM chat_messages WHERE chat_id IN ? ORDER BY chat_id, created_at DESC, id DESC`, chatIds).
		Scan(&models).Error
	if err != nil {
		return nil, err
	}

	for _, m := range models {
		result[m.ChatId] = r.mapper.ChatMessageToEntity(m)
	}
	return result, nil
}
