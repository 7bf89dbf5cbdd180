package contract

import (
	"context"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/repository/specification"

	"github.com/google/uuid"
)

type QuizRepository interface {
	CreateBatch(ctx context.Context, questions []*entity.QuizQuestion) error
	DeleteByRoadmapId(ctx context.Context, roadmapId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error)
}
