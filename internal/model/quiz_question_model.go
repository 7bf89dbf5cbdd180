package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizQuestion struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoadmapId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Question  string         `gorm:"type:text;not null"`
	Level     string         `gorm:"type:varchar(100);not null"`
	Options   datatypes.JSON `gorm:"type:jsonb;not null"`
	Answer    string         `gorm:"type:text;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
