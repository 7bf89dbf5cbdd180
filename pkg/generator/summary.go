package generator

import (
	"context"
	"fmt"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/pkg/llm"
)

// SummaryCreator produces a short teaching summary for a single roadmap item,
// framed by the central node it belongs to.
type SummaryCreator struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewSummaryCreator(ai llm.Provider, log logger.ILogger) *SummaryCreator {
	return &SummaryCreator{ai: ai, log: log}
}

func (s *SummaryCreator) Summarize(ctx context.Context, doc *entity.RoadmapDocument, itemID string) (string, error) {
	topic, centerNode, ok := FindItem(doc, itemID)
	if !ok {
		return "", ErrItemNotFound
	}

	prompt := RenderTemplate(constant.SummaryPromptTemplate, map[string]string{
		"topic":       topic,
		"center_node": centerNode,
	})

	raw, err := s.ai.Generate(ctx, prompt, llm.WithTemperature(0.6))
	if err != nil {
		return "", fmt.Errorf("summary completion: %w", err)
	}

	return topic + ":\n" + CleanText(raw), nil
}
