package implementation

import (
	"context"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/mapper"
	"yolcu-backend/internal/model"
	"yolcu-backend/internal/repository/contract"
	"yolcu-backend/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuizMapper
}

func NewQuizRepository(db *gorm.DB) contract.QuizRepository {
	return &QuizRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuizMapper(),
	}
}

func (r *QuizRepositoryImpl) CreateBatch(ctx context.Context, questions []*entity.QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	models, err := r.mapper.ToModels(questions)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return err
		}
		*questions[i] = *e
	}
	return nil
}

func (r *QuizRepositoryImpl) DeleteByRoadmapId(ctx context.Context, roadmapId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("roadmap_id = ?", roadmapId).Delete(&model.QuizQuestion{}).Error
}

func (r *QuizRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error) {
	var models []*model.QuizQuestion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}
