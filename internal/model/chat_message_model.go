package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage stores room chat history. Exactly one of HackathonId or TeamId
// is set; the check constraint enforces it at the database level.
type ChatMessage struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content     string     `gorm:"type:text;not null"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	HackathonId *uuid.UUID `gorm:"type:uuid;index"`
	TeamId      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
