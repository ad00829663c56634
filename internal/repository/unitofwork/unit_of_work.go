package unitofwork

import (
	"context"

	"chatlog-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatRepository() contract.ChatRepository
	ChatMessageRepository() contract.ChatMessageRepository
	BlogPostRepository() contract.BlogPostRepository
	AdminUserRepository() contract.AdminUserRepository
}
