package implementation

import (
	"context"
	"errors"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/mapper"
	"yolcu-backend/internal/model"
	"yolcu-backend/internal/repository/contract"
	"yolcu-backend/internal/repository/specification"

	"gorm.io/gorm"
)

type CVRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CVMapper
}

func NewCVRepository(db *gorm.DB) contract.CVRepository {
	return &CVRepositoryImpl{
		db:     db,
		mapper: mapper.NewCVMapper(),
	}
}

func (r *CVRepositoryImpl) Create(ctx context.Context, cv *entity.CV) error {
	m, err := r.mapper.ToModel(cv)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*cv = *e
	return nil
}

func (r *CVRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CV, error) {
	var m model.CV
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *CVRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CV, error) {
	var models []*model.CV
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CV, len(models))
	for i, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
