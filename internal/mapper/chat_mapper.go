package mapper

import (
	"chatlog-admin-be/internal/entity"
	"chatlog-admin-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}

	return &entity.Chat{
		Id:          c.Id,
		Phone:       c.Phone,
		Name:        c.Name,
		ProjectType: c.ProjectType,
		Language:    c.Language,
		Status:      entity.ChatStatus(c.Status),
		Notes:       c.Notes,
		UserAgent:   c.UserAgent,
		IpAddress:   c.IpAddress,
		Metrics: entity.ChatMetrics{
			MessageCount:        c.MessageCount,
			HasPriceObjection:   c.HasPriceObjection,
			HasNegativeResponse: c.HasNegativeResponse,
			HasName:             c.HasName,
			AskedForContact:     c.AskedForContact,
			HasUncertainty:      c.HasUncertainty,
			UncertaintyCount:    c.UncertaintyCount,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *ChatMapper) ChatToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}

	return &model.Chat{
		Id:                  c.Id,
		Phone:               c.Phone,
		Name:                c.Name,
		ProjectType:         c.ProjectType,
		Language:            c.Language,
		Status:              string(c.Status),
		Notes:               c.Notes,
		UserAgent:           c.UserAgent,
		IpAddress:           c.IpAddress,
		MessageCount:        c.Metrics.MessageCount,
		HasPriceObjection:   c.Metrics.HasPriceObjection,
		HasNegativeResponse: c.Metrics.HasNegativeResponse,
		HasName:             c.Metrics.HasName,
		AskedForContact:     c.Metrics.AskedForContact,
		HasUncertainty:      c.Metrics.HasUncertainty,
		UncertaintyCount:    c.Metrics.UncertaintyCount,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Sender:    entity.ChatSender(msg.Sender),
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Sender:    string(msg.Sender),
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}
