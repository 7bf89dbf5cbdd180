package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/pkg/llm"
)

// RoadmapGenerator produces a full learning roadmap document for a field of
// study. The document shape is strict: a malformed or empty model response is
// an error, never a silently empty roadmap.
type RoadmapGenerator struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewRoadmapGenerator(ai llm.Provider, log logger.ILogger) *RoadmapGenerator {
	return &RoadmapGenerator{ai: ai, log: log}
}

func (g *RoadmapGenerator) Generate(ctx context.Context, field string) (*entity.RoadmapDocument, error) {
	prompt := RenderTemplate(constant.RoadmapPromptTemplate, map[string]string{"field": field})

	raw, err := g.ai.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("roadmap completion: %w", err)
	}

	clean := ExtractJSON(raw, ShapeObject)
	if clean == "{}" {
		g.log.Error("RoadmapGenerator", "no JSON object in model output", map[string]interface{}{
			"field":      field,
			"raw_length": len(raw),
		})
		return nil, ErrMalformedAIResponse
	}

	var doc entity.RoadmapDocument
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	if len(doc.MainStages) == 0 {
		return nil, ErrMalformedAIResponse
	}
	if doc.DiagramTitle == "" {
		doc.DiagramTitle = field
	}
	return &doc, nil
}
