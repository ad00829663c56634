package implementation

import (
	"context"
	"errors"

	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/mapper"
	"chatlog-admin-be/internal/model"
	"chatlog-admin-be/internal/repository/contract"
	"chatlog-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BlogMapper
}

func NewBlogPostRepository(db *gorm.DB) contract.BlogPostRepository {
	return &BlogPostRepositoryImpl{
		db:     db,
		mapper: mapper.NewBlogMapper(),
	}
}

func (r *BlogPostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BlogPostRepositoryImpl) Create(ctx context.Context, post *entity.BlogPost) error {
	m := r.mapper.BlogPostToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.BlogPostToEntity(m)
	return nil
}

func (r *BlogPostRepositoryImpl) Update(ctx context.Context, post *entity.BlogPost) error {
	m := r.mapper.BlogPostToModel(post)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.BlogPostToEntity(m)
	return nil
}

func (r *BlogPostRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogPost{}).Error
}

func (r *BlogPostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error) {
	var m model.BlogPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BlogPostToEntity(&m), nil
}

func (r *BlogPostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error) {
	var models []*model.BlogPost
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.BlogPost, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BlogPostToEntity(m)
	}
	return entities, nil
}

func (r *BlogPostRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BlogPost{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
