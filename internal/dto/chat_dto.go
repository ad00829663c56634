package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessagePayload struct {
	Sender string    `json:"sender" validate:"required,oneof=bot user"`
	Text   string    `json:"text" validate:"required"`
	Time   time.Time `json:"time" validate:"required"`
}

type ChatMetricsPayload struct {
	MessageCount        int  `json:"messageCount"`
	HasPriceObjection   bool `json:"hasPriceObjection"`
	HasNegativeResponse bool `json:"hasNegativeResponse"`
	HasName             bool `json:"hasName"`
	AskedForContact     bool `json:"askedForContact"`
	HasUncertainty      bool `json:"hasUncertainty"`
	UncertaintyCount    int  `json:"uncertaintyCount"`
}

// SaveChatRequest is the widget's transcript save call. Without a chatId a
// new chat is created; with one, the referenced chat and its full message
// list are replaced.
type SaveChatRequest struct {
	ChatId      *uuid.UUID           `json:"chatId"`
	Timestamp   *time.Time           `json:"timestamp"`
	Phone       *string              `json:"phone"`
	Name        *string              `json:"name"`
	ProjectType *string              `json:"projectType"`
	Language    *string              `json:"language"`
	UserAgent   *string              `json:"userAgent"`
	IpAddress   *string              `json:"ipAddress"`
	Messages    []ChatMessagePayload `json:"messages" validate:"required,min=2,dive"`
	Metrics     *ChatMetricsPayload  `json:"metrics"`
}

type SaveChatResponse struct {
	Success bool      `json:"success"`
	ChatId  uuid.UUID `json:"chatId"`
	Updated bool      `json:"updated"`
	Message string    `json:"message"`
}

type SaveChatResult struct {
	ChatId  uuid.UUID
	Updated bool
}

type ListChatsQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Status    string `query:"status" validate:"omitempty,oneof=new contacted in_progress completed archived"`
	Search    string `query:"search"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
	HasPhone  *bool  `query:"hasPhone"`
	HasName   *bool  `query:"hasName"`
}

type LastMessageResponse struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

type ChatSummaryResponse struct {
	Id           uuid.UUID            `json:"id"`
	Phone        *string              `json:"phone"`
	Name         *string              `json:"name"`
	ProjectType  *string              `json:"projectType"`
	Language     string               `json:"language"`
	Status       string               `json:"status"`
	MessageCount int                  `json:"messageCount"`
	LastMessage  *LastMessageResponse `json:"lastMessage,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ListChatsResponse struct {
	Chats      []ChatSummaryResponse `json:"chats"`
	Pagination PaginationResponse    `json:"pagination"`
}

type ChatMessageResponse struct {
	Id     uuid.UUID `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time"`
}

type ChatDetailResponse struct {
	Id          uuid.UUID             `json:"id"`
	Phone       *string               `json:"phone"`
	Name        *string               `json:"name"`
	ProjectType *string               `json:"projectType"`
	Language    string                `json:"language"`
	Status      string                `json:"status"`
	Notes       *string               `json:"notes"`
	UserAgent   *string               `json:"userAgent"`
	IpAddress   *string               `json:"ipAddress"`
	Metrics     ChatMetricsPayload    `json:"metrics"`
	Messages    []ChatMessageResponse `json:"messages"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// UpdateChatRequest uses pointers so "absent" and "present but empty" stay
// distinguishable: absent means no-op, empty notes clears them.
type UpdateChatRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=new contacted in_progress completed archived"`
	Notes  *string `json:"notes" validate:"omitempty,max=5000"`
}

type ContactStats struct {
	WithPhone int64 `json:"withPhone"`
	WithName  int64 `json:"withName"`
	WithBoth  int64 `json:"withBoth"`
}

type MetricStats struct {
	AvgMessageCount   float64 `json:"avgMessageCount"`
	PriceObjections   int64   `json:"priceObjections"`
	NegativeResponses int64   `json:"negativeResponses"`
	UncertaintyRate   float64 `json:"uncertaintyRate"`
}

type RecentActivityStats struct {
	Last24h    int64 `json:"last24h"`
	Last7Days  int64 `json:"last7days"`
	Last30Days int64 `json:"last30days"`
}

type ChatStatsResponse struct {
	Total          int64               `json:"total"`
	ByStatus       map[string]int64    `json:"byStatus"`
	ByProjectType  map[string]int64    `json:"byProjectType"`
	WithContact    ContactStats        `json:"withContact"`
	Metrics        MetricStats         `json:"metrics"`
	RecentActivity RecentActivityStats `json:"recentActivity"`
}
