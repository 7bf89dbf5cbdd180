package dto

import (
	"time"

	"github.com/google/uuid"

	"yolcu-backend/internal/entity"
)

type GenerateRoadmapRequest struct {
	Field string `json:"field" validate:"required,min=2,max=100"`
}

type RoadmapResponse struct {
	Id        uuid.UUID              `json:"id"`
	Content   entity.RoadmapDocument `json:"content"`
	CreatedAt time.Time              `json:"created_at"`
}

type RoadmapChatRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}

type RoadmapChatResponse struct {
	Answer string `json:"answer"`
}

type SummaryResponse struct {
	ItemId  string `json:"item_id"`
	Summary string `json:"summary"`
}

type MotivationResponse struct {
	Message string `json:"message"`
}
