package mapper

import (
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/model"
)

type HackathonMapper struct{}

func NewHackathonMapper() *HackathonMapper {
	return &HackathonMapper{}
}

func (m *HackathonMapper) ToEntity(h *model.Hackathon) *entity.Hackathon {
	if h == nil {
		return nil
	}
	return &entity.Hackathon{
		Id:          h.Id,
		Title:       h.Title,
		Description: h.Description,
		StartDate:   h.StartDate,
		EndDate:     h.EndDate,
		CreatedAt:   h.CreatedAt,
	}
}

func (m *HackathonMapper) ToModel(h *entity.Hackathon) *model.Hackathon {
	if h == nil {
		return nil
	}
	return &model.Hackathon{
		Id:          h.Id,
		Title:       h.Title,
		Description: h.Description,
		StartDate:   h.StartDate,
		EndDate:     h.EndDate,
		CreatedAt:   h.CreatedAt,
	}
}

func (m *HackathonMapper) ToEntities(hackathons []*model.Hackathon) []*entity.Hackathon {
	entities := make([]*entity.Hackathon, len(hackathons))
	for i, h := range hackathons {
		entities[i] = m.ToEntity(h)
	}
	return entities
}

type TeamMapper struct{}

func NewTeamMapper() *TeamMapper {
	return &TeamMapper{}
}

func (m *TeamMapper) ToEntity(t *model.Team) *entity.Team {
	if t == nil {
		return nil
	}
	return &entity.Team{
		Id:              t.Id,
		Name:            t.Name,
		HackathonId:     t.HackathonId,
		CreatedByUserId: t.CreatedByUserId,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *TeamMapper) ToModel(t *entity.Team) *model.Team {
	if t == nil {
		return nil
	}
	return &model.Team{
		Id:              t.Id,
		Name:            t.Name,
		HackathonId:     t.HackathonId,
		CreatedByUserId: t.CreatedByUserId,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *TeamMapper) ToEntities(teams []*model.Team) []*entity.Team {
	entities := make([]*entity.Team, len(teams))
	for i, t := range teams {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

type TeamMemberMapper struct{}

func NewTeamMemberMapper() *TeamMemberMapper {
	return &TeamMemberMapper{}
}

func (m *TeamMemberMapper) ToEntity(tm *model.TeamMember) *entity.TeamMember {
	if tm == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:       tm.Id,
		UserId:   tm.UserId,
		TeamId:   tm.TeamId,
		JoinedAt: tm.JoinedAt,
	}
}

func (m *TeamMemberMapper) ToModel(tm *entity.TeamMember) *model.TeamMember {
	if tm == nil {
		return nil
	}
	return &model.TeamMember{
		Id:       tm.Id,
		UserId:   tm.UserId,
		TeamId:   tm.TeamId,
		JoinedAt: tm.JoinedAt,
	}
}
