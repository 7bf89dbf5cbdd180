package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/websocket"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService bridges the event bus to the websocket hub: every
// persisted room message comes through here exactly once and is fanned out
// to the room's live subscribers.
type consumerService struct {
	pubSub *gochannel.GoChannel
	hub    *websocket.Hub
	log    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, hub *websocket.Hub, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		hub:    hub,
		log:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, constant.ChatMessageCreatedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event dto.RoomMessageEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("ConsumerService", "unmarshal failed", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	payload, err := json.Marshal(event.Message)
	if err != nil {
		msg.Ack()
		return
	}

	cs.hub.Broadcast(event.Room, payload)
	msg.Ack()
}
