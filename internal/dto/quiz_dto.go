package dto

import (
	"github.com/google/uuid"
)

type GenerateQuizRequest struct {
	RoadmapId  uuid.UUID `json:"roadmap_id" validate:"required"`
	RightItems []string  `json:"rightItems" validate:"required,min=1"`
	LeftItems  []string  `json:"leftItems"`
}

type QuizQuestionResponse struct {
	Id       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Level    string    `json:"level"`
	Options  []string  `json:"options"`
	Answer   string    `json:"answer"`
}

type QuizResponse struct {
	RoadmapId uuid.UUID              `json:"roadmap_id"`
	QuizTitle string                 `json:"quiz_title"`
	Questions []QuizQuestionResponse `json:"questions"`
}
