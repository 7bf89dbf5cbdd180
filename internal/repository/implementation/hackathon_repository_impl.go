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

type HackathonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.HackathonMapper
}

func NewHackathonRepository(db *gorm.DB) contract.HackathonRepository {
	return &HackathonRepositoryImpl{
		db:     db,
		mapper: mapper.NewHackathonMapper(),
	}
}

func (r *HackathonRepositoryImpl) Create(ctx context.Context, hackathon *entity.Hackathon) error {
	m := r.mapper.ToModel(hackathon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*hackathon = *r.mapper.ToEntity(m)
	return nil
}

func (r *HackathonRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Hackathon, error) {
	var m model.Hackathon
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *HackathonRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Hackathon, error) {
	var models []*model.Hackathon
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewTeamRepository(db *gorm.DB) contract.TeamRepository {
	return &TeamRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	var m model.Team
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TeamRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error) {
	var models []*model.Team
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type TeamMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMemberMapper
}

func NewTeamMemberRepository(db *gorm.DB) contract.TeamMemberRepository {
	return &TeamMemberRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMemberMapper(),
	}
}

func (r *TeamMemberRepositoryImpl) Create(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.ToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamMemberRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error) {
	var m model.TeamMember
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TeamMemberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TeamMember, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TeamMemberRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TeamMember{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
