package entity

import (
	"time"

	"github.com/google/uuid"
)

type CV struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	FileName        string
	Content         string
	BasicScore      float64
	AdvancedScore   float64
	FinalScore      float64
	FoundKeywords   []string
	MissingKeywords []string
	Feedback        string
	Tips            []string
	Language        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
