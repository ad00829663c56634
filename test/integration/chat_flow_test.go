package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"chatlog-admin-be/internal/config"
	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/repository/specification"
	"chatlog-admin-be/internal/repository/unitofwork"
	"chatlog-admin-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatTransactionalFlow(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := config.ResolveDSN(os.LookupEnv)
	if dsn == "" {
		t.Skip("Skipping integration test: no database connection string set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.BlogPostRepository())
	assert.NotNil(t, uow.AdminUserRepository())

	// Basic ping
	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	t.Run("Chat with messages commits atomically", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		phone := "+77001112233"
		chat := &entity.Chat{
			Id:       uuid.New(),
			Phone:    &phone,
			Language: "ru",
			Status:   entity.ChatStatusNew,
			Metrics: entity.ChatMetrics{
				MessageCount: 2,
			},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatRepository().Create(ctx, chat))

		messages := []*entity.ChatMessage{
			{Id: uuid.New(), ChatId: chat.Id, Sender: entity.ChatSenderBot, Text: "Здравствуйте!", CreatedAt: time.Now()},
			{Id: uuid.New(), ChatId: chat.Id, Sender: entity.ChatSenderUser, Text: "Сколько стоит ремонт?", CreatedAt: time.Now().Add(time.Second)},
		}
		require.NoError(t, uow.ChatMessageRepository().CreateBatch(ctx, messages))

		// Visible inside the transaction
		found, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chat.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, &phone, found.Phone)

		count, err := uow.ChatMessageRepository().Count(ctx, specification.ByChatID{ChatID: chat.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Rollback leaves no trace", func(t *testing.T) {
		ctx := context.Background()
		chatId := uuid.New()

		require.NoError(t, uow.Begin(ctx))
		chat := &entity.Chat{
			Id:        chatId,
			Language:  "ru",
			Status:    entity.ChatStatusNew,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatRepository().Create(ctx, chat))
		uow.Rollback()

		fresh := uowFactory.NewUnitOfWork(ctx)
		found, err := fresh.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
