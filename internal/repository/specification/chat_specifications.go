package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByHackathonID matches room messages and teams of a hackathon
type ByHackathonID struct {
	HackathonID uuid.UUID
}

func (s ByHackathonID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("hackathon_id = ?", s.HackathonID)
}

// ByTeamID matches room messages and members of a team
type ByTeamID struct {
	TeamID uuid.UUID
}

func (s ByTeamID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("team_id = ?", s.TeamID)
}
