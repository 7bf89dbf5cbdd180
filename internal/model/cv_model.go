package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CV struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName        string         `gorm:"type:varchar(255);not null"`
	Content         string         `gorm:"type:text"`
	BasicScore      float64        `gorm:"not null"`
	AdvancedScore   float64        `gorm:"not null"`
	FinalScore      float64        `gorm:"not null"`
	FoundKeywords   datatypes.JSON `gorm:"type:jsonb"`
	MissingKeywords datatypes.JSON `gorm:"type:jsonb"`
	Feedback        string         `gorm:"type:text"`
	Tips            datatypes.JSON `gorm:"type:jsonb"`
	Language        string         `gorm:"type:varchar(8);not null;default:'tr'"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (CV) TableName() string {
	return "cvs"
}
