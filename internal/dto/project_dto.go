package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"yolcu-backend/pkg/generator"
)

type ProjectSuggestionsResponse struct {
	ProjectLevels []generator.ProjectLevel `json:"project_levels"`
}

type EvaluateProjectRequest struct {
	SuggestionTitle       string `form:"suggestion_title" validate:"required"`
	SuggestionDescription string `form:"suggestion_description" validate:"required"`
}

type ProjectEvaluationResponse struct {
	Id         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Evaluation json.RawMessage `json:"evaluation"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ProjectResponse struct {
	Id          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Evaluation  json.RawMessage `json:"evaluation"`
	CreatedAt   time.Time       `json:"created_at"`
}
