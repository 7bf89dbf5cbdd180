package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"yolcu-backend/internal/constant"
	"yolcu-backend/internal/pkg/logger"
	"yolcu-backend/pkg/llm"
)

// SuggestionSet groups project ideas by difficulty level.
type SuggestionSet struct {
	ProjectLevels []ProjectLevel `json:"project_levels"`
}

type ProjectLevel struct {
	LevelName string              `json:"level_name"`
	Projects  []ProjectSuggestion `json:"projects"`
}

type ProjectSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestionGenerator turns roadmap technology titles into portfolio project
// ideas. Partially broken model output degrades gracefully: entries missing a
// title or description are dropped rather than failing the whole set.
type SuggestionGenerator struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewSuggestionGenerator(ai llm.Provider, log logger.ILogger) *SuggestionGenerator {
	return &SuggestionGenerator{ai: ai, log: log}
}

func (g *SuggestionGenerator) Generate(ctx context.Context, titles []string) (*SuggestionSet, error) {
	prompt := RenderTemplate(constant.SuggestionPromptTemplate, map[string]string{
		"titles": strings.Join(titles, ", "),
	})

	raw, err := g.ai.Generate(ctx, prompt, llm.WithTemperature(0.8))
	if err != nil {
		return nil, fmt.Errorf("suggestion completion: %w", err)
	}

	clean := ExtractJSON(raw, ShapeObject)
	if clean == "{}" {
		return nil, ErrMalformedAIResponse
	}

	var set SuggestionSet
	if err := json.Unmarshal([]byte(clean), &set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	if set.ProjectLevels == nil {
		return nil, ErrMalformedAIResponse
	}

	dropped := 0
	for i := range set.ProjectLevels {
		kept := set.ProjectLevels[i].Projects[:0]
		for _, p := range set.ProjectLevels[i].Projects {
			if p.Title == "" || p.Description == "" {
				dropped++
				continue
			}
			kept = append(kept, p)
		}
		set.ProjectLevels[i].Projects = kept
	}
	if dropped > 0 {
		g.log.Warn("SuggestionGenerator", "dropped incomplete suggestions", map[string]interface{}{
			"dropped": dropped,
		})
	}
	return &set, nil
}
