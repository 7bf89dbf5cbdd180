package model

import (
	"time"

	"github.com/google/uuid"
)

type Hackathon struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     *time.Time `gorm:""`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (Hackathon) TableName() string {
	return "hackathons"
}
