package implementation

import (
	"context"
	"errors"

	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/model"
	"chatlog-admin-be/internal/repository/contract"

	"gorm.io/gorm"
)

type AdminUserRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) contract.AdminUserRepository {
	return &AdminUserRepositoryImpl{db: db}
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, user *entity.AdminUser) error {
	m := model.AdminUser(*user)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*user = entity.AdminUser(m)
	return nil
}

func (r *AdminUserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var m model.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	e := entity.AdminUser(m)
	return &e, nil
}
