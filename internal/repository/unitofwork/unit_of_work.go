package unitofwork

import (
	"context"

	"yolcu-backend/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RoadmapRepository() contract.RoadmapRepository
	QuizRepository() contract.QuizRepository
	CVRepository() contract.CVRepository
	ProjectRepository() contract.ProjectRepository
	HackathonRepository() contract.HackathonRepository
	TeamRepository() contract.TeamRepository
	TeamMemberRepository() contract.TeamMemberRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
