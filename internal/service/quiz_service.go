package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/specification"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/pkg/generator"
)

type IQuizService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error)
	ListByRoadmap(ctx context.Context, userId, roadmapId uuid.UUID) ([]*dto.QuizQuestionResponse, error)
}

type quizService struct {
	uowFactory unitofwork.RepositoryFactory
	quizGen    *generator.QuizGenerator
	log        logger.ILogger
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory, quizGen *generator.QuizGenerator, log logger.ILogger) IQuizService {
	return &quizService{
		uowFactory: uowFactory,
		quizGen:    quizGen,
		log:        log,
	}
}

func (s *quizService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	roadmap, err := uow.RoadmapRepository().FindOne(ctx,
		specification.ByID{ID: req.RoadmapId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, ErrRoadmapNotFound
	}

	payload, err := s.quizGen.Generate(ctx, req.RightItems, req.LeftItems)
	if err != nil {
		return nil, err
	}

	questions := flattenQuiz(req.RoadmapId, payload)

	// Regeneration replaces the previous quiz for the roadmap.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.QuizRepository().DeleteByRoadmapId(ctx, req.RoadmapId); err != nil {
		return nil, err
	}
	if err := uow.QuizRepository().CreateBatch(ctx, questions); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("QuizService", "quiz generated", map[string]interface{}{
		"roadmap_id": req.RoadmapId.String(),
		"questions":  len(questions),
	})

	return &dto.QuizResponse{
		RoadmapId: req.RoadmapId,
		QuizTitle: payload.QuizTitle,
		Questions: toQuestionResponses(questions),
	}, nil
}

func (s *quizService) ListByRoadmap(ctx context.Context, userId, roadmapId uuid.UUID) ([]*dto.QuizQuestionResponse, error) {
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

	questions, err := uow.QuizRepository().FindAll(ctx,
		specification.FilterBy{Field: "roadmap_id", Value: roadmapId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := toQuestionResponses(questions)
	out := make([]*dto.QuizQuestionResponse, len(responses))
	for i := range responses {
		out[i] = &responses[i]
	}
	return out, nil
}

// flattenQuiz turns the leveled AI payload into per-question rows. Level
// labels keep both the numeric level and its title for display.
func flattenQuiz(roadmapId uuid.UUID, payload *generator.QuizPayload) []*entity.QuizQuestion {
	var questions []*entity.QuizQuestion
	now := time.Now()
	for _, level := range payload.Levels {
		label := level.LevelTitle
		if label == "" {
			label = fmt.Sprintf("Seviye %d", level.Level)
		}
		for _, q := range level.Questions {
			questions = append(questions, &entity.QuizQuestion{
				Id:        uuid.New(),
				RoadmapId: roadmapId,
				Question:  q.Question,
				Level:     label,
				Options:   q.Options,
				Answer:    q.Answer,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}
	return questions
}

func toQuestionResponses(questions []*entity.QuizQuestion) []dto.QuizQuestionResponse {
	responses := make([]dto.QuizQuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = dto.QuizQuestionResponse{
			Id:       q.Id,
			Question: q.Question,
			Level:    q.Level,
			Options:  q.Options,
			Answer:   q.Answer,
		}
	}
	return responses
}
