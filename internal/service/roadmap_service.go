package service

import (
	"context"
	"errors"
	"time"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/specification"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/pkg/generator"

	"github.com/google/uuid"
)

var ErrRoadmapNotFound = errors.New("roadmap not found")

type IRoadmapService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) (*dto.RoadmapResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.RoadmapResponse, error)
	Get(ctx context.Context, userId, roadmapId uuid.UUID) (*dto.RoadmapResponse, error)
	Summarize(ctx context.Context, userId, roadmapId uuid.UUID, itemId string) (*dto.SummaryResponse, error)
	Motivation(ctx context.Context) (*dto.MotivationResponse, error)
}

type roadmapService struct {
	uowFactory unitofwork.RepositoryFactory
	roadmapGen *generator.RoadmapGenerator
	summaries  *generator.SummaryCreator
	motivation *generator.MotivationGenerator
	log        logger.ILogger
}

func NewRoadmapService(
	uowFactory unitofwork.RepositoryFactory,
	roadmapGen *generator.RoadmapGenerator,
	summaries *generator.SummaryCreator,
	motivation *generator.MotivationGenerator,
	log logger.ILogger,
) IRoadmapService {
	return &roadmapService{
		uowFactory: uowFactory,
		roadmapGen: roadmapGen,
		summaries:  summaries,
		motivation: motivation,
		log:        log,
	}
}

func (s *roadmapService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) (*dto.RoadmapResponse, error) {
	doc, err := s.roadmapGen.Generate(ctx, req.Field)
	if err != nil {
		return nil, err
	}

	roadmap := &entity.Roadmap{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   *doc,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RoadmapRepository().Create(ctx, roadmap); err != nil {
		return nil, err
	}

	s.log.Info("RoadmapService", "roadmap generated", map[string]interface{}{
		"roadmap_id": roadmap.Id.String(),
		"field":      req.Field,
	})

	return toRoadmapResponse(roadmap), nil
}

func (s *roadmapService) List(ctx context.Context, userId uuid.UUID) ([]*dto.RoadmapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roadmaps, err := uow.RoadmapRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RoadmapResponse, len(roadmaps))
	for i, r := range roadmaps {
		responses[i] = toRoadmapResponse(r)
	}
	return responses, nil
}

func (s *roadmapService) Get(ctx context.Context, userId, roadmapId uuid.UUID) (*dto.RoadmapResponse, error) {
	roadmap, err := s.findOwned(ctx, userId, roadmapId)
	if err != nil {
		return nil, err
	}
	return toRoadmapResponse(roadmap), nil
}

func (s *roadmapService) Summarize(ctx context.Context, userId, roadmapId uuid.UUID, itemId string) (*dto.SummaryResponse, error) {
	roadmap, err := s.findOwned(ctx, userId, roadmapId)
	if err != nil {
		return nil, err
	}

	summary, err := s.summaries.Summarize(ctx, &roadmap.Content, itemId)
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{ItemId: itemId, Summary: summary}, nil
}

func (s *roadmapService) Motivation(ctx context.Context) (*dto.MotivationResponse, error) {
	message, err := s.motivation.Generate(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MotivationResponse{Message: message}, nil
}

func (s *roadmapService) findOwned(ctx context.Context, userId, roadmapId uuid.UUID) (*entity.Roadmap, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roadmap, err := uow.RoadmapRepository().FindOne(ctx,
		specification.ByID{ID: roadmapId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, ErrRoadmapNotFound
	}
	return roadmap, nil
}

func toRoadmapResponse(r *entity.Roadmap) *dto.RoadmapResponse {
	return &dto.RoadmapResponse{
		Id:        r.Id,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
