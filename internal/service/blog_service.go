package service

import (
	"context"

	"chatlog-admin-be/internal/dto"
	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/pkg/serverutils"
	"chatlog-admin-be/internal/repository/specification"
	"chatlog-admin-be/internal/repository/unitofwork"
	"chatlog-admin-be/pkg/ai"

	"github.com/google/uuid"
)

type IBlogService interface {
	Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query *dto.ListBlogPostsQuery) (*dto.ListBlogPostsResponse, error)
	ShowBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	Generate(ctx context.Context, req *dto.GenerateBlogPostRequest) (*dto.GenerateBlogPostResponse, error)
}

type blogService struct {
	uowFactory   unitofwork.RepositoryFactory
	geminiAPIKey string
}

func NewBlogService(uowFactory unitofwork.RepositoryFactory, geminiAPIKey string) IBlogService {
	return &blogService{
		uowFactory:   uowFactory,
		geminiAPIKey: geminiAPIKey,
	}
}

func (s *blogService) Create(ctx context.Context, req *dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BlogPostRepository()

	existing, err := repo.FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewValidationError("a post with this slug already exists")
	}

	post := &entity.BlogPost{
		Id:        uuid.New(),
		Slug:      req.Slug,
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		Keywords:  req.Keywords,
		Published: req.Published,
	}
	if err := repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return blogPostToDto(post), nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BlogPostRepository()

	post, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, serverutils.NewNotFoundError("blog post not found")
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		other, err := repo.FindOne(ctx, specification.BySlug{Slug: *req.Slug})
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, serverutils.NewValidationError("a post with this slug already exists")
		}
		post.Slug = *req.Slug
	}
	if req.Title != nil {
		post.Title = req.Title
	}
	if req.Content != nil {
		post.Content = req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.Category != nil {
		post.Category = req.Category
	}
	if req.Keywords != nil {
		post.Keywords = req.Keywords
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return blogPostToDto(post), nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BlogPostRepository()

	post, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if post == nil {
		return serverutils.NewNotFoundError("blog post not found")
	}

	return repo.Delete(ctx, id)
}

func (s *blogService) List(ctx context.Context, query *dto.ListBlogPostsQuery) (*dto.ListBlogPostsResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BlogPostRepository()

	var filters []specification.Specification
	if query.Published != nil {
		filters = append(filters, specification.Filter("published", *query.Published))
	}

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	pageSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	posts, err := repo.FindAll(ctx, pageSpecs...)
	if err != nil {
		return nil, err
	}

	postDtos := make([]dto.BlogPostResponse, len(posts))
	for i, p := range posts {
		postDtos[i] = *blogPostToDto(p)
	}

	return &dto.ListBlogPostsResponse{
		Posts: postDtos,
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// ShowBySlug serves the public site and only returns published posts.
func (s *blogService) ShowBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.BlogPostRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.PublishedOnly{},
	)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, serverutils.NewNotFoundError("blog post not found")
	}

	return blogPostToDto(post), nil
}

func (s *blogService) Generate(ctx context.Context, req *dto.GenerateBlogPostRequest) (*dto.GenerateBlogPostResponse, error) {
	if s.geminiAPIKey == "" {
		return nil, serverutils.NewValidationError("content generation is not configured")
	}

	language := req.Language
	if language == "" {
		language = entity.DefaultChatLanguage
	}

	draft, err := ai.GenerateBlogDraft(ctx, s.geminiAPIKey, req.Topic, language)
	if err != nil {
		return nil, err
	}

	return &dto.GenerateBlogPostResponse{
		Title:   draft.Title,
		Content: draft.Content,
		Excerpt: draft.Excerpt,
	}, nil
}

func blogPostToDto(p *entity.BlogPost) *dto.BlogPostResponse {
	return &dto.BlogPostResponse{
		Id:        p.Id,
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Category:  p.Category,
		Keywords:  p.Keywords,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
