package contract

import (
	"context"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/repository/specification"
)

type HackathonRepository interface {
	Create(ctx context.Context, hackathon *entity.Hackathon) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hackathon, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hackathon, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error)
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
