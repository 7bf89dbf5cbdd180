package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateHackathonRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=255"`
	Description string     `json:"description" validate:"max=5000"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type HackathonResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type TeamResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	HackathonId uuid.UUID `json:"hackathon_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	UserId    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
