package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBlogPostRequest struct {
	Slug      string            `json:"slug" validate:"required,max=255"`
	Title     map[string]string `json:"title" validate:"required"`
	Content   map[string]string `json:"content" validate:"required"`
	Excerpt   map[string]string `json:"excerpt"`
	Category  *string           `json:"category"`
	Keywords  []string          `json:"keywords"`
	Published bool              `json:"published"`
}

type UpdateBlogPostRequest struct {
	Slug      *string           `json:"slug" validate:"omitempty,max=255"`
	Title     map[string]string `json:"title"`
	Content   map[string]string `json:"content"`
	Excerpt   map[string]string `json:"excerpt"`
	Category  *string           `json:"category"`
	Keywords  []string          `json:"keywords"`
	Published *bool             `json:"published"`
}

type BlogPostResponse struct {
	Id        uuid.UUID         `json:"id"`
	Slug      string            `json:"slug"`
	Title     map[string]string `json:"title"`
	Content   map[string]string `json:"content"`
	Excerpt   map[string]string `json:"excerpt,omitempty"`
	Category  *string           `json:"category"`
	Keywords  []string          `json:"keywords,omitempty"`
	Published bool              `json:"published"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ListBlogPostsQuery struct {
	Page      int   `query:"page"`
	Limit     int   `query:"limit"`
	Published *bool `query:"published"`
}

type ListBlogPostsResponse struct {
	Posts      []BlogPostResponse `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type GenerateBlogPostRequest struct {
	Topic    string `json:"topic" validate:"required"`
	Language string `json:"language" validate:"omitempty,oneof=ru en kz"`
}

type GenerateBlogPostResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
}
