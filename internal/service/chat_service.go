package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"yolcu-backend/internal/dto"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/internal/repository/specification"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/pkg/generator"
)

// topicIndexTTL bounds staleness of the cached topic list; roadmaps are
// immutable after generation so a long TTL is safe.
const topicIndexTTL = 30 * time.Minute

type IChatService interface {
	Ask(ctx context.Context, userId, roadmapId uuid.UUID, req *dto.RoadmapChatRequest) (*dto.RoadmapChatResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	answerer   *generator.ChatAnswerer
	topicCache *cache.Cache
	log        logger.ILogger
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, answerer *generator.ChatAnswerer, log logger.ILogger) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		answerer:   answerer,
		topicCache: cache.New(topicIndexTTL, 10*time.Minute),
		log:        log,
	}
}

// cached per-roadmap topic index plus the parsed document it came from.
type topicIndex struct {
	topics []string
	doc    *entity.RoadmapDocument
}

func (s *chatService) Ask(ctx context.Context, userId, roadmapId uuid.UUID, req *dto.RoadmapChatRequest) (*dto.RoadmapChatResponse, error) {
	index, err := s.loadTopicIndex(ctx, userId, roadmapId)
	if err != nil {
		return nil, err
	}

	answer := s.answerer.Answer(ctx, req.Question, index.topics, index.doc)

	s.log.Debug("ChatService", "question answered", map[string]interface{}{
		"roadmap_id": roadmapId.String(),
	})

	return &dto.RoadmapChatResponse{Answer: answer}, nil
}

func (s *chatService) loadTopicIndex(ctx context.Context, userId, roadmapId uuid.UUID) (*topicIndex, error) {
	key := userId.String() + ":" + roadmapId.String()
	if cached, ok := s.topicCache.Get(key); ok {
		return cached.(*topicIndex), nil
	}

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

	index := &topicIndex{
		topics: generator.ExtractTopics(&roadmap.Content),
		doc:    &roadmap.Content,
	}
	s.topicCache.Set(key, index, cache.DefaultExpiration)
	return index, nil
}
