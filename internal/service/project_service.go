package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/specification"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/pkg/generator"
)

var ErrNoRoadmapForSuggestions = errors.New("no roadmap available for suggestions")

type IProjectService interface {
	Suggestions(ctx context.Context, userId uuid.UUID) (*dto.ProjectSuggestionsResponse, error)
	Evaluate(ctx context.Context, userId uuid.UUID, req *dto.EvaluateProjectRequest, fileName string, data []byte) (*dto.ProjectEvaluationResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error)
}

type projectService struct {
	uowFactory    unitofwork.RepositoryFactory
	suggestionGen *generator.SuggestionGenerator
	evaluator     *generator.ProjectEvaluator
	log           logger.ILogger
}

func NewProjectService(
	uowFactory unitofwork.RepositoryFactory,
	suggestionGen *generator.SuggestionGenerator,
	evaluator *generator.ProjectEvaluator,
	log logger.ILogger,
) IProjectService {
	return &projectService{
		uowFactory:    uowFactory,
		suggestionGen: suggestionGen,
		evaluator:     evaluator,
		log:           log,
	}
}

// Suggestions derives project ideas from the central node titles of the
// user's most recent roadmap.
func (s *projectService) Suggestions(ctx context.Context, userId uuid.UUID) (*dto.ProjectSuggestionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roadmap, err := uow.RoadmapRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, ErrNoRoadmapForSuggestions
	}

	titles := centralTitles(&roadmap.Content)
	if len(titles) == 0 {
		return nil, ErrNoRoadmapForSuggestions
	}

	set, err := s.suggestionGen.Generate(ctx, titles)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectSuggestionsResponse{ProjectLevels: set.ProjectLevels}, nil
}

func (s *projectService) Evaluate(ctx context.Context, userId uuid.UUID, req *dto.EvaluateProjectRequest, fileName string, data []byte) (*dto.ProjectEvaluationResponse, error) {
	code, err := generator.ReadProjectFile(fileName, data)
	if err != nil {
		return nil, err
	}

	evaluation, err := s.evaluator.Evaluate(ctx, req.SuggestionTitle, req.SuggestionDescription, code)
	if err != nil {
		return nil, err
	}

	project := &entity.Project{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.SuggestionTitle,
		Description: &req.SuggestionDescription,
		Evaluation:  evaluation,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	s.log.Info("ProjectService", "project evaluated", map[string]interface{}{
		"project_id": project.Id.String(),
	})

	return &dto.ProjectEvaluationResponse{
		Id:         project.Id,
		Title:      project.Title,
		Evaluation: json.RawMessage(project.Evaluation),
		CreatedAt:  project.CreatedAt,
	}, nil
}

func (s *projectService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = &dto.ProjectResponse{
			Id:          p.Id,
			Title:       p.Title,
			Description: p.Description,
			Evaluation:  json.RawMessage(p.Evaluation),
			CreatedAt:   p.CreatedAt,
		}
	}
	return responses, nil
}

func centralTitles(doc *entity.RoadmapDocument) []string {
	var titles []string
	seen := make(map[string]struct{})
	for _, stage := range doc.MainStages {
		for _, node := range stage.SubNodes {
			if node.CentralNodeTitle == "" {
				continue
			}
			if _, ok := seen[node.CentralNodeTitle]; ok {
				continue
			}
			seen[node.CentralNodeTitle] = struct{}{}
			titles = append(titles, node.CentralNodeTitle)
		}
	}
	return titles
}
