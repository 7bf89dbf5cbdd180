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

// QuizPayload mirrors the JSON shape the quiz prompt mandates.
type QuizPayload struct {
	QuizTitle string      `json:"quizTitle"`
	Levels    []QuizLevel `json:"levels"`
}

type QuizLevel struct {
	Level      int            `json:"level"`
	LevelTitle string         `json:"levelTitle"`
	Questions  []QuizItemSpec `json:"questions"`
}

type QuizItemSpec struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// QuizGenerator builds a leveled multiple-choice quiz from the right-hand
// (primary) and left-hand (supporting) items of a roadmap node.
type QuizGenerator struct {
	ai  llm.Provider
	log logger.ILogger
}

func NewQuizGenerator(ai llm.Provider, log logger.ILogger) *QuizGenerator {
	return &QuizGenerator{ai: ai, log: log}
}

func (g *QuizGenerator) Generate(ctx context.Context, rightItems, leftItems []string) (*QuizPayload, error) {
	prompt := RenderTemplate(constant.QuizPromptTemplate, map[string]string{
		"rightItems": strings.Join(rightItems, ", "),
		"leftItems":  strings.Join(leftItems, ", "),
	})

	raw, err := g.ai.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("quiz completion: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyAIResponse
	}

	clean := ExtractJSON(raw, ShapeObject)
	if clean == "{}" {
		g.log.Error("QuizGenerator", "no JSON object in model output", map[string]interface{}{
			"raw_length": len(raw),
		})
		return nil, ErrMalformedAIResponse
	}

	var payload QuizPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	if err := validateQuiz(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// validateQuiz enforces the contract the prompt asks for: at least one level,
// every question with exactly four options and a non-empty answer.
func validateQuiz(p *QuizPayload) error {
	if len(p.Levels) == 0 {
		return ErrMalformedAIResponse
	}
	for _, level := range p.Levels {
		if len(level.Questions) == 0 {
			return ErrMalformedAIResponse
		}
		for _, q := range level.Questions {
			if q.Question == "" || len(q.Options) != 4 || q.Answer == "" {
				return ErrMalformedAIResponse
			}
		}
	}
	return nil
}
