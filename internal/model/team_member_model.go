package model

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;index:idx_team_members_user_team,unique"`
	TeamId   uuid.UUID `gorm:"type:uuid;not null;index:idx_team_members_user_team,unique"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
