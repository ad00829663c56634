package service

import (
	"context"
	"testing"
	"time"

	"chatlog-admin-be/internal/dto"
	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/pkg/logger"
	"chatlog-admin-be/internal/pkg/serverutils"
	"chatlog-admin-be/internal/repository/contract"
	"chatlog-admin-be/internal/repository/specification"
	"chatlog-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore backs the in-memory unit of work so write-path semantics are
// testable without a database.
type memStore struct {
	chats    map[uuid.UUID]*entity.Chat
	messages map[uuid.UUID][]*entity.ChatMessage

	deletes    int
	begun      int
	committed  int
	rolledBack int
}

func newMemStore() *memStore {
	return &memStore{
		chats:    make(map[uuid.UUID]*entity.Chat),
		messages: make(map[uuid.UUID][]*entity.ChatMessage),
	}
}

type memUOW struct{ s *memStore }

func (u *memUOW) Begin(ctx context.Context) error { u.s.begun++; return nil }
func (u *memUOW) Commit() error                   { u.s.committed++; return nil }
func (u *memUOW) Rollback() error                 { u.s.rolledBack++; return nil }

func (u *memUOW) ChatRepository() contract.ChatRepository {
	return &memChatRepo{s: u.s}
}

func (u *memUOW) ChatMessageRepository() contract.ChatMessageRepository {
	return &memMsgRepo{s: u.s}
}

func (u *memUOW) BlogPostRepository() contract.BlogPostRepository   { return nil }
func (u *memUOW) AdminUserRepository() contract.AdminUserRepository { return nil }

type memFactory struct{ s *memStore }

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUOW{s: f.s}
}

type memChatRepo struct{ s *memStore }

func (r *memChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	c := *chat
	r.s.chats[chat.Id] = &c
	return nil
}

func (r *memChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	c := *chat
	r.s.chats[chat.Id] = &c
	return nil
}

func (r *memChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	for _, sp := range specs {
		if byID, ok := sp.(specification.ByID); ok {
			if chat, found := r.s.chats[byID.ID]; found {
				c := *chat
				return &c, nil
			}
		}
	}
	return nil, nil
}

func (r *memChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	return nil, nil
}

func (r *memChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.s.chats)), nil
}

func (r *memChatRepo) CountGroupedBy(ctx context.Context, column string) (map[string]int64, error) {
	return nil, nil
}

func (r *memChatRepo) AverageMessageCount(ctx context.Context) (float64, error) {
	return 0, nil
}

type memMsgRepo struct{ s *memStore }

func (r *memMsgRepo) CreateBatch(ctx context.Context, messages []*entity.ChatMessage) error {
	for _, m := range messages {
		msg := *m
		r.s.messages[m.ChatId] = append(r.s.messages[m.ChatId], &msg)
	}
	return nil
}

func (r *memMsgRepo) DeleteByChatId(ctx context.Context, chatId uuid.UUID) error {
	r.s.deletes++
	delete(r.s.messages, chatId)
	return nil
}

func (r *memMsgRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	for _, sp := range specs {
		if byChat, ok := sp.(specification.ByChatID); ok {
			return r.s.messages[byChat.ChatID], nil
		}
	}
	return nil, nil
}

func (r *memMsgRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *memMsgRepo) LastPerChat(ctx context.Context, chatIds []uuid.UUID) (map[uuid.UUID]*entity.ChatMessage, error) {
	return map[uuid.UUID]*entity.ChatMessage{}, nil
}

type capturingPublisher struct{ payloads [][]byte }

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func newWriteFixture() (*memStore, *capturingPublisher, IChatService) {
	store := newMemStore()
	pub := &capturingPublisher{}
	svc := NewChatService(&memFactory{s: store}, pub, gocache.New(time.Minute, time.Minute), nopLogger{})
	return store, pub, svc
}

func transcript(texts ...string) []dto.ChatMessagePayload {
	messages := make([]dto.ChatMessagePayload, len(texts))
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range texts {
		sender := "user"
		if i%2 == 0 {
			sender = "bot"
		}
		messages[i] = dto.ChatMessagePayload{
			Sender: sender,
			Text:   text,
			Time:   base.Add(time.Duration(i) * time.Second),
		}
	}
	return messages
}

func TestSaveReplacesTranscriptOnUpdate(t *testing.T) {
	store, pub, svc := newWriteFixture()
	ctx := context.Background()

	phone := "+77001234567"
	result, err := svc.Save(ctx, &dto.SaveChatRequest{
		Phone:    &phone,
		Messages: transcript("Hi", "Hello", "What do you build?"),
	}, serverutils.ClientMeta{})
	require.NoError(t, err)
	assert.False(t, result.Updated)

	chatId := result.ChatId
	require.Len(t, store.messages[chatId], 3)
	assert.Equal(t, 3, store.chats[chatId].Metrics.MessageCount)

	// Re-save the same chat with a longer transcript: old rows go, the new
	// list lands whole, message count follows the submitted length.
	name := "Aidana"
	longer := transcript("Hi", "Hello", "What do you build?", "Houses mostly")
	result, err = svc.Save(ctx, &dto.SaveChatRequest{
		ChatId:   &chatId,
		Name:     &name,
		Messages: longer,
	}, serverutils.ClientMeta{})
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, chatId, result.ChatId)

	assert.Equal(t, 1, store.deletes)
	require.Len(t, store.messages[chatId], 4)
	assert.Equal(t, "Houses mostly", store.messages[chatId][3].Text)
	assert.Equal(t, 4, store.chats[chatId].Metrics.MessageCount)

	// Contact fields replace-if-present: name arrived, phone did not.
	require.NotNil(t, store.chats[chatId].Name)
	assert.Equal(t, "Aidana", *store.chats[chatId].Name)
	require.NotNil(t, store.chats[chatId].Phone)
	assert.Equal(t, phone, *store.chats[chatId].Phone)

	// Re-submitting the identical list is idempotent.
	result, err = svc.Save(ctx, &dto.SaveChatRequest{
		ChatId:   &chatId,
		Messages: longer,
	}, serverutils.ClientMeta{})
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, 2, store.deletes)
	require.Len(t, store.messages[chatId], 4)
	assert.Equal(t, 4, store.chats[chatId].Metrics.MessageCount)

	// Every successful save ran in a committed transaction and published.
	assert.Equal(t, 3, store.begun)
	assert.Equal(t, 3, store.committed)
	assert.Equal(t, 0, store.rolledBack)
	assert.Len(t, pub.payloads, 3)
}

func TestSaveRejectsShortTranscript(t *testing.T) {
	store, pub, svc := newWriteFixture()

	_, err := svc.Save(context.Background(), &dto.SaveChatRequest{
		Messages: transcript("Hi"),
	}, serverutils.ClientMeta{})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	// Nothing was written or announced.
	assert.Empty(t, store.chats)
	assert.Equal(t, 0, store.begun)
	assert.Empty(t, pub.payloads)
}

func TestSaveUnknownChatId(t *testing.T) {
	store, _, svc := newWriteFixture()

	missing := uuid.New()
	_, err := svc.Save(context.Background(), &dto.SaveChatRequest{
		ChatId:   &missing,
		Messages: transcript("Hi", "Hello"),
	}, serverutils.ClientMeta{})
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, 0, store.begun)
}

func TestUpdatePointerSemantics(t *testing.T) {
	store, _, svc := newWriteFixture()
	ctx := context.Background()

	notes := "call back later"
	chatId := uuid.New()
	store.chats[chatId] = &entity.Chat{
		Id:       chatId,
		Language: "ru",
		Status:   entity.ChatStatusNew,
		Notes:    &notes,
	}

	newNotes := "reached by phone"
	require.NoError(t, svc.Update(ctx, chatId, &dto.UpdateChatRequest{Notes: &newNotes}))
	assert.Equal(t, entity.ChatStatusNew, store.chats[chatId].Status)
	require.NotNil(t, store.chats[chatId].Notes)
	assert.Equal(t, newNotes, *store.chats[chatId].Notes)

	archived := "archived"
	require.NoError(t, svc.Update(ctx, chatId, &dto.UpdateChatRequest{Status: &archived}))
	assert.Equal(t, entity.ChatStatusArchived, store.chats[chatId].Status)
	require.NotNil(t, store.chats[chatId].Notes)
	assert.Equal(t, newNotes, *store.chats[chatId].Notes)

	// Present-but-empty notes clear them; absent notes would not.
	empty := ""
	require.NoError(t, svc.Update(ctx, chatId, &dto.UpdateChatRequest{Notes: &empty}))
	assert.Nil(t, store.chats[chatId].Notes)
	assert.Equal(t, entity.ChatStatusArchived, store.chats[chatId].Status)

	err := svc.Update(ctx, uuid.New(), &dto.UpdateChatRequest{Status: &archived})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}
