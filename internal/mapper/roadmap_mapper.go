package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/model"
)

type RoadmapMapper struct{}

func NewRoadmapMapper() *RoadmapMapper {
	return &RoadmapMapper{}
}

func (m *RoadmapMapper) ToEntity(r *model.Roadmap) (*entity.Roadmap, error) {
	if r == nil {
		return nil, nil
	}

	var doc entity.RoadmapDocument
	if len(r.Content) > 0 {
		if err := json.Unmarshal(r.Content, &doc); err != nil {
			return nil, err
		}
	}

	return &entity.Roadmap{
		Id:        r.Id,
		UserId:    r.UserId,
		Content:   doc,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (m *RoadmapMapper) ToModel(r *entity.Roadmap) (*model.Roadmap, error) {
	if r == nil {
		return nil, nil
	}

	content, err := json.Marshal(r.Content)
	if err != nil {
		return nil, err
	}

	return &model.Roadmap{
		Id:        r.Id,
		UserId:    r.UserId,
		Content:   datatypes.JSON(content),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (m *RoadmapMapper) ToEntities(roadmaps []*model.Roadmap) ([]*entity.Roadmap, error) {
	entities := make([]*entity.Roadmap, len(roadmaps))
	for i, r := range roadmaps {
		e, err := m.ToEntity(r)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
