package mapper

import (
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/model"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:          c.Id,
		Content:     c.Content,
		UserId:      c.UserId,
		HackathonId: c.HackathonId,
		TeamId:      c.TeamId,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:          c.Id,
		Content:     c.Content,
		UserId:      c.UserId,
		HackathonId: c.HackathonId,
		TeamId:      c.TeamId,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToEntities(messages []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
