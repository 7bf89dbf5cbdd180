package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/pkg/generator"
)

// keywordLimit caps how many CV-derived keywords feed the ATS scoring pass.
const keywordLimit = 20

type ICVService interface {
	Analyze(ctx context.Context, userId uuid.UUID, fileName string, data []byte) (*dto.CVAnalysisResponse, error)
}

type cvService struct {
	uowFactory unitofwork.RepositoryFactory
	analyzer   *generator.CVAnalyzer
	log        logger.ILogger
}

func NewCVService(uowFactory unitofwork.RepositoryFactory, analyzer *generator.CVAnalyzer, log logger.ILogger) ICVService {
	return &cvService{
		uowFactory: uowFactory,
		analyzer:   analyzer,
		log:        log,
	}
}

func (s *cvService) Analyze(ctx context.Context, userId uuid.UUID, fileName string, data []byte) (*dto.CVAnalysisResponse, error) {
	content, err := generator.ReadCV(fileName, data)
	if err != nil {
		return nil, err
	}

	keywords := generator.ExtractKeywords(content, keywordLimit)
	analysis := s.analyzer.Analyze(content, keywords)

	feedback, err := s.analyzer.Feedback(ctx, content, analysis)
	if err != nil {
		// Scoring is still valuable without the model's feedback text.
		s.log.Warn("CVService", "feedback generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		feedback = ""
	}

	cv := &entity.CV{
		Id:              uuid.New(),
		UserId:          userId,
		FileName:        fileName,
		Content:         content,
		BasicScore:      analysis.BasicScore,
		AdvancedScore:   analysis.AdvancedScore,
		FinalScore:      analysis.FinalScore,
		FoundKeywords:   analysis.FoundKeywords,
		MissingKeywords: analysis.MissingKeywords,
		Feedback:        feedback,
		Tips:            generator.OptimizationTips(),
		Language:        analysis.Language,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CVRepository().Create(ctx, cv); err != nil {
		return nil, err
	}

	s.log.Info("CVService", "cv analyzed", map[string]interface{}{
		"cv_id":       cv.Id.String(),
		"final_score": cv.FinalScore,
	})

	return &dto.CVAnalysisResponse{
		Id:              cv.Id,
		FileName:        cv.FileName,
		BasicScore:      cv.BasicScore,
		AdvancedScore:   cv.AdvancedScore,
		FinalScore:      cv.FinalScore,
		FoundKeywords:   cv.FoundKeywords,
		MissingKeywords: cv.MissingKeywords,
		Feedback:        cv.Feedback,
		Tips:            cv.Tips,
		Language:        cv.Language,
		CreatedAt:       cv.CreatedAt,
	}, nil
}
