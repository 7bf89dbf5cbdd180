package contract

import (
	"context"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/repository/specification"
)

type CVRepository interface {
	Create(ctx context.Context, cv *entity.CV) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CV, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CV, error)
}
