package mapper

import (
	"gorm.io/datatypes"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}

	evaluation := "{}"
	if len(p.Evaluation) > 0 {
		evaluation = string(p.Evaluation)
	}

	return &entity.Project{
		Id:          p.Id,
		UserId:      p.UserId,
		Title:       p.Title,
		Description: p.Description,
		Evaluation:  evaluation,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}

	evaluation := p.Evaluation
	if evaluation == "" {
		evaluation = "{}"
	}

	return &model.Project{
		Id:          p.Id,
		UserId:      p.UserId,
		Title:       p.Title,
		Description: p.Description,
		Evaluation:  datatypes.JSON(evaluation),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ProjectMapper) ToEntities(projects []*model.Project) []*entity.Project {
	entities := make([]*entity.Project, len(projects))
	for i, p := range projects {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
