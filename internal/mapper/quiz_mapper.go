package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/model"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToEntity(q *model.QuizQuestion) (*entity.QuizQuestion, error) {
	if q == nil {
		return nil, nil
	}

	var options []string
	if len(q.Options) > 0 {
		if err := json.Unmarshal(q.Options, &options); err != nil {
			return nil, err
		}
	}

	return &entity.QuizQuestion{
		Id:        q.Id,
		RoadmapId: q.RoadmapId,
		Question:  q.Question,
		Level:     q.Level,
		Options:   options,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}, nil
}

func (m *QuizMapper) ToModel(q *entity.QuizQuestion) (*model.QuizQuestion, error) {
	if q == nil {
		return nil, nil
	}

	options, err := json.Marshal(q.Options)
	if err != nil {
		return nil, err
	}

	return &model.QuizQuestion{
		Id:        q.Id,
		RoadmapId: q.RoadmapId,
		Question:  q.Question,
		Level:     q.Level,
		Options:   datatypes.JSON(options),
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}, nil
}

func (m *QuizMapper) ToEntities(questions []*model.QuizQuestion) ([]*entity.QuizQuestion, error) {
	entities := make([]*entity.QuizQuestion, len(questions))
	for i, q := range questions {
		e, err := m.ToEntity(q)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}

func (m *QuizMapper) ToModels(questions []*entity.QuizQuestion) ([]*model.QuizQuestion, error) {
	models := make([]*model.QuizQuestion, len(questions))
	for i, q := range questions {
		mm, err := m.ToModel(q)
		if err != nil {
			return nil, err
		}
		models[i] = mm
	}
	return models, nil
}
