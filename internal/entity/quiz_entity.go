package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuizQuestion is one persisted multiple-choice question row.
type QuizQuestion struct {
	Id        uuid.UUID
	RoadmapId uuid.UUID
	Question  string
	Level     string
	Options   []string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
