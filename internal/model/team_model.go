package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	HackathonId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedByUserId uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Team) TableName() string {
	return "teams"
}
