package entity

import (
	"time"

	"github.com/google/uuid"
)

type Hackathon struct {
	Id          uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}

type Team struct {
	Id              uuid.UUID
	Name            string
	HackathonId     uuid.UUID
	CreatedByUserId uuid.UUID
	CreatedAt       time.Time
}

type TeamMember struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	TeamId   uuid.UUID
	JoinedAt time.Time
}
