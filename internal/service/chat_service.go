package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"chatlog-admin-be/internal/dto"
	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/pkg/logger"
	"chatlog-admin-be/internal/pkg/serverutils"
	"chatlog-admin-be/internal/repository/specification"
	"chatlog-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	statsCacheKey = "chat_stats"
	statsCacheTTL = 30 * time.Second
)

type IChatService interface {
	Save(ctx context.Context, req *dto.SaveChatRequest, meta serverutils.ClientMeta) (*dto.SaveChatResult, error)
	List(ctx context.Context, query *dto.ListChatsQuery) (*dto.ListChatsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ChatDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateChatRequest) error
	Stats(ctx context.Context) (*dto.ChatStatsResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	cache            *gocache.Cache
	logger           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	cache *gocache.Cache,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		cache:            cache,
		logger:           log,
	}
}

// Save creates a new chat or replaces an existing one. The parent write and
// the full message replacement land in one transaction so readers never see
// a chat with an empty transcript.
func (s *chatService) Save(ctx context.Context, req *dto.SaveChatRequest, meta serverutils.ClientMeta) (*dto.SaveChatResult, error) {
	if len(req.Messages) < 2 {
		return nil, serverutils.NewValidationError("at least 2 messages are required to save a chat")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		chat    *entity.Chat
		updated bool
		err     error
	)
	if req.ChatId == nil {
		chat, err = s.buildNewChat(req, meta)
	} else {
		chat, err = s.loadExistingChat(ctx, uow, req)
		updated = true
	}
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if updated {
		err = uow.ChatRepository().Update(ctx, chat)
	} else {
		err = uow.ChatRepository().Create(ctx, chat)
	}
	if err != nil {
		uow.Rollback()
		return nil, err
	}

	if updated {
		if err := uow.ChatMessageRepository().DeleteByChatId(ctx, chat.Id); err != nil {
			uow.Rollback()
			return nil, err
		}
	}

	messages := make([]*entity.ChatMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = &entity.ChatMessage{
			Id:        uuid.New(),
			ChatId:    chat.Id,
			Sender:    entity.ChatSender(m.Sender),
			Text:      m.Text,
			CreatedAt: m.Time,
		}
	}
	if err := uow.ChatMessageRepository().CreateBatch(ctx, messages); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.cache.Delete(statsCacheKey)
	s.publishRecorded(ctx, chat, updated)

	return &dto.SaveChatResult{ChatId: chat.Id, Updated: updated}, nil
}

func (s *chatService) buildNewChat(req *dto.SaveChatRequest, meta serverutils.ClientMeta) (*entity.Chat, error) {
	language := entity.DefaultChatLanguage
	if req.Language != nil && *req.Language != "" {
		language = *req.Language
	}

	userAgent := req.UserAgent
	if userAgent == nil && meta.UserAgent != "" {
		ua := meta.UserAgent
		userAgent = &ua
	}
	ipAddress := req.IpAddress
	if ipAddress == nil && meta.IpAddress != "" {
		ip := meta.IpAddress
		ipAddress = &ip
	}

	now := time.Now()
	if req.Timestamp != nil {
		now = *req.Timestamp
	}

	return &entity.Chat{
		Id:          uuid.New(),
		Phone:       req.Phone,
		Name:        req.Name,
		ProjectType: req.ProjectType,
		Language:    language,
		Status:      entity.ChatStatusNew,
		UserAgent:   userAgent,
		IpAddress:   ipAddress,
		Metrics:     metricsFromPayload(req.Metrics, len(req.Messages)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *chatService) loadExistingChat(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.SaveChatRequest) (*entity.Chat, error) {
	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: *req.ChatId})
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, serverutils.NewNotFoundError("chat not found")
	}

	// Contact fields: replaced when present, untouched otherwise.
	if req.Phone != nil {
		chat.Phone = req.Phone
	}
	if req.Name != nil {
		chat.Name = req.Name
	}
	if req.ProjectType != nil {
		chat.ProjectType = req.ProjectType
	}
	if req.Language != nil && *req.Language != "" {
		chat.Language = *req.Language
	}

	// Metrics are replaced wholesale on every save.
	chat.Metrics = metricsFromPayload(req.Metrics, len(req.Messages))
	chat.UpdatedAt = time.Now()

	return chat, nil
}

// metricsFromPayload defaults every field independently when the metrics
// block is absent. The stored message count always mirrors the submitted
// transcript length.
func metricsFromPayload(p *dto.ChatMetricsPayload, messageCount int) entity.ChatMetrics {
	metrics := entity.ChatMetrics{MessageCount: messageCount}
	if p == nil {
		return metrics
	}
	metrics.HasPriceObjection = p.HasPriceObjection
	metrics.HasNegativeResponse = p.HasNegativeResponse
	metrics.HasName = p.HasName
	metrics.AskedForContact = p.AskedForContact
	metrics.HasUncertainty = p.HasUncertainty
	metrics.UncertaintyCount = p.UncertaintyCount
	return metrics
}

func (s *chatService) publishRecorded(ctx context.Context, chat *entity.Chat, updated bool) {
	evt := dto.ChatRecordedEvent{
		ChatId:          chat.Id,
		Updated:         updated,
		Phone:           chat.Phone,
		Name:            chat.Name,
		AskedForContact: chat.Metrics.AskedForContact,
		MessageCount:    chat.Metrics.MessageCount,
		OccurredAt:      time.Now(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	// The feed is auxiliary; a publish failure must not fail the save.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("ChatService", "Failed to publish chat recorded event", map[string]interface{}{
			"chat_id": chat.Id,
			"error":   err.Error(),
		})
	}
}

func (s *chatService) List(ctx context.Context, query *dto.ListChatsQuery) (*dto.ListChatsResponse, error) {
	params, err := normalizeListQuery(query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chatRepo := uow.ChatRepository()

	filters := params.filterSpecs()

	total, err := chatRepo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	pageSpecs := append(filters,
		specification.OrderBy{Field: params.sortColumn, Desc: params.sortDesc},
		specification.Pagination{Limit: params.limit, Offset: (params.page - 1) * params.limit},
	)
	chats, err := chatRepo.FindAll(ctx, pageSpecs...)
	if err != nil {
		return nil, err
	}

	chatIds := make([]uuid.UUID, len(chats))
	for i, c := range chats {
		chatIds[i] = c.Id
	}
	lastMessages, err := uow.ChatMessageRepository().LastPerChat(ctx, chatIds)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ChatSummaryResponse, len(chats))
	for i, c := range chats {
		summary := dto.ChatSummaryResponse{
			Id:           c.Id,
			Phone:        c.Phone,
			Name:         c.Name,
			ProjectType:  c.ProjectType,
			Language:     c.Language,
			Status:       string(c.Status),
			MessageCount: c.Metrics.MessageCount,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		}
		if last, ok := lastMessages[c.Id]; ok {
			summary.LastMessage = &dto.LastMessageResponse{
				Sender: string(last.Sender),
				Text:   last.Text,
				Time:   last.CreatedAt,
			}
		}
		summaries[i] = summary
	}

	return &dto.ListChatsResponse{
		Chats: summaries,
		Pagination: dto.PaginationResponse{
			Page:       params.page,
			Limit:      params.limit,
			Total:      total,
			TotalPages: totalPages(total, params.limit),
		},
	}, nil
}

func (s *chatService) Show(ctx context.Context, id uuid.UUID) (*dto.ChatDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, serverutils.NewNotFoundError("chat not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	messageDtos := make([]dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		messageDtos[i] = dto.ChatMessageResponse{
			Id:     m.Id,
			Sender: string(m.Sender),
			Text:   m.Text,
			Time:   m.CreatedAt,
		}
	}

	return &dto.ChatDetailResponse{
		Id:          chat.Id,
		Phone:       chat.Phone,
		Name:        chat.Name,
		ProjectType: chat.ProjectType,
		Language:    chat.Language,
		Status:      string(chat.Status),
		Notes:       chat.Notes,
		UserAgent:   chat.UserAgent,
		IpAddress:   chat.IpAddress,
		Metrics: dto.ChatMetricsPayload{
			MessageCount:        chat.Metrics.MessageCount,
			HasPriceObjection:   chat.Metrics.HasPriceObjection,
			HasNegativeResponse: chat.Metrics.HasNegativeResponse,
			HasName:             chat.Metrics.HasName,
			AskedForContact:     chat.Metrics.AskedForContact,
			HasUncertainty:      chat.Metrics.HasUncertainty,
			UncertaintyCount:    chat.Metrics.UncertaintyCount,
		},
		Messages:  messageDtos,
		CreatedAt: chat.CreatedAt,
		UpdatedAt: chat.UpdatedAt,
	}, nil
}

// Update applies status and notes independently. Absent fields stay
// untouched; an explicitly empty notes value clears them.
func (s *chatService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateChatRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if chat == nil {
		return serverutils.NewNotFoundError("chat not found")
	}

	if req.Status != nil {
		chat.Status = entity.ChatStatus(*req.Status)
	}
	if req.Notes != nil {
		if *req.Notes == "" {
			chat.Notes = nil
		} else {
			chat.Notes = req.Notes
		}
	}
	chat.UpdatedAt = time.Now()

	if err := uow.ChatRepository().Update(ctx, chat); err != nil {
		return err
	}

	s.cache.Delete(statsCacheKey)
	return nil
}

// Stats aggregates the whole chat collection. The sub-aggregates are
// independent reads and run concurrently; the result is cached briefly
// because the admin dashboard polls it.
func (s *chatService) Stats(ctx context.Context) (*dto.ChatStatsResponse, error) {
	if cached, found := s.cache.Get(statsCacheKey); found {
		if stats, ok := cached.(*dto.ChatStatsResponse); ok {
			return stats, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatRepository()
	now := time.Now()

	var (
		total, withPhone, withName, withBoth int64
		priceObjections, negative, uncertain int64
		last24h, last7days, last30days       int64
		byStatus, byProjectType              map[string]int64
		avgMessages                          float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { total, err = repo.Count(gctx); return })
	g.Go(func() (err error) { byStatus, err = repo.CountGroupedBy(gctx, "status"); return })
	g.Go(func() (err error) { byProjectType, err = repo.CountGroupedBy(gctx, "project_type"); return })
	g.Go(func() (err error) { avgMessages, err = repo.AverageMessageCount(gctx); return })
	g.Go(func() (err error) {
		withPhone, err = repo.Count(gctx, specification.PhonePresent{Present: true})
		return
	})
	g.Go(func() (err error) {
		withName, err = repo.Count(gctx, specification.Filter("has_name", true))
		return
	})
	g.Go(func() (err error) {
		withBoth, err = repo.Count(gctx, specification.PhonePresent{Present: true}, specification.Filter("has_name", true))
		return
	})
	g.Go(func() (err error) {
		priceObjections, err = repo.Count(gctx, specification.Filter("has_price_objection", true))
		return
	})
	g.Go(func() (err error) {
		negative, err = repo.Count(gctx, specification.Filter("has_negative_response", true))
		return
	})
	g.Go(func() (err error) {
		uncertain, err = repo.Count(gctx, specification.Filter("has_uncertainty", true))
		return
	})
	g.Go(func() (err error) {
		last24h, err = repo.Count(gctx, specification.CreatedFrom{From: now.Add(-24 * time.Hour)})
		return
	})
	g.Go(func() (err error) {
		last7days, err = repo.Count(gctx, specification.CreatedFrom{From: now.AddDate(0, 0, -7)})
		return
	})
	g.Go(func() (err error) {
		last30days, err = repo.Count(gctx, specification.CreatedFrom{From: now.AddDate(0, 0, -30)})
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &dto.ChatStatsResponse{
		Total:         total,
		ByStatus:      byStatus,
		ByProjectType: byProjectType,
		WithContact: dto.ContactStats{
			WithPhone: withPhone,
			WithName:  withName,
			WithBoth:  withBoth,
		},
		Metrics: dto.MetricStats{
			AvgMessageCount:   avgMessages,
			PriceObjections:   priceObjections,
			NegativeResponses: negative,
			UncertaintyRate:   uncertaintyRate(uncertain, total),
		},
		RecentActivity: dto.RecentActivityStats{
			Last24h:    last24h,
			Last7Days:  last7days,
			Last30Days: last30days,
		},
	}

	s.cache.Set(statsCacheKey, stats, statsCacheTTL)
	return stats, nil
}

// uncertaintyRate is the percentage of chats with uncertainty signals,
// rounded to two decimals. Zero when the collection is empty.
func uncertaintyRate(uncertain, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(uncertain)/float64(total)*100*100) / 100
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// listParams is the normalized, range-checked form of a list query.
type listParams struct {
	page       int
	limit      int
	sortColumn string
	sortDesc   bool
	status     string
	search     string
	dateFrom   *time.Time
	dateTo     *time.Time
	hasPhone   *bool
	hasName    *bool
}

var sortColumns = map[string]string{
	"created_at":    "created_at",
	"updated_at":    "updated_at",
	"message_count": "message_count",
}

func normalizeListQuery(q *dto.ListChatsQuery) (*listParams, error) {
	p := &listParams{
		page:       q.Page,
		limit:      q.Limit,
		sortColumn: "created_at",
		sortDesc:   true,
		status:     q.Status,
		search:     q.Search,
		hasPhone:   q.HasPhone,
		hasName:    q.HasName,
	}

	if p.page < 1 {
		p.page = 1
	}
	if p.limit < 1 {
		p.limit = 20
	}
	if p.limit > 100 {
		p.limit = 100
	}

	// Unknown sort fields fall back to created_at.
	if column, ok := sortColumns[q.SortBy]; ok {
		p.sortColumn = column
	}
	if q.SortOrder == "asc" {
		p.sortDesc = false
	}

	if q.DateFrom != "" {
		from, err := parseDateBound(q.DateFrom, false)
		if err != nil {
			return nil, serverutils.NewValidationError(fmt.Sprintf("invalid dateFrom: %s", q.DateFrom))
		}
		p.dateFrom = from
	}
	if q.DateTo != "" {
		to, err := parseDateBound(q.DateTo, true)
		if err != nil {
			return nil, serverutils.NewValidationError(fmt.Sprintf("invalid dateTo: %s", q.DateTo))
		}
		p.dateTo = to
	}

	return p, nil
}

// parseDateBound accepts RFC3339 timestamps or plain dates. A date-only
// upper bound is pushed to the end of that day so the range stays inclusive.
func parseDateBound(value string, upper bool) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func (p *listParams) filterSpecs() []specification.Specification {
	var specs []specification.Specification
	if p.status != "" {
		specs = append(specs, specification.Filter("status", p.status))
	}
	if p.search != "" {
		specs = append(specs, specification.SearchTerm{Term: p.search})
	}
	if p.dateFrom != nil {
		specs = append(specs, specification.CreatedFrom{From: *p.dateFrom})
	}
	if p.dateTo != nil {
		specs = append(specs, specification.CreatedTo{To: *p.dateTo})
	}
	if p.hasPhone != nil {
		specs = append(specs, specification.PhonePresent{Present: *p.hasPhone})
	}
	if p.hasName != nil {
		specs = append(specs, specification.Filter("has_name", *p.hasName))
	}
	return specs
}
