package service

import (
	"context"
	"encoding/json"
	"time"

	"chatlog-admin-be/internal/dto"
	"chatlog-admin-be/internal/pkg/logger"
	"chatlog-admin-be/internal/pkg/mailer"
	"chatlog-admin-be/internal/websocket"
	"chatlog-admin-be/pkg/events"
	pktNats "chatlog-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains chat-recorded events: pushes them to the admin
// live feed, alerts by email when a visitor asked for contact, and relays
// to NATS for external consumers when configured.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	hub           *websocket.Hub
	emailService  mailer.IEmailService
	alertEmail    string
	natsPublisher *pktNats.Publisher
	logger        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	emailService mailer.IEmailService,
	alertEmail string,
	natsPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		hub:           hub,
		emailService:  emailService,
		alertEmail:    alertEmail,
		natsPublisher: natsPublisher,
		logger:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var evt dto.ChatRecordedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal chat event", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages to prevent infinite redelivery.
		msg.Ack()
		return
	}

	if cs.hub != nil {
		cs.hub.Broadcast("chat_recorded", evt)
	}

	if evt.AskedForContact && !evt.Updated && cs.emailService != nil && cs.alertEmail != "" {
		if err := cs.emailService.SendContactAlert(cs.alertEmail, evt.Name, evt.Phone); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to send contact alert", map[string]interface{}{
				"chat_id": evt.ChatId,
				"error":   err.Error(),
			})
		}
	}

	if cs.natsPublisher != nil {
		relay := events.BaseEvent{
			Type: cs.topicName,
			Data: map[string]interface{}{
				"chat_id":       evt.ChatId.String(),
				"updated":       evt.Updated,
				"message_count": evt.MessageCount,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.natsPublisher.Publish(ctx, relay); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to relay event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
