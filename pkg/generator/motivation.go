package generator

import (
	"context"
	"fmt"

	"yolcu-backend/internal/constant"
	"yolcu-backend/pkg/llm"
)

// MotivationGenerator writes the daily motivational message. Plain text in,
// plain text out.
type MotivationGenerator struct {
	ai llm.Provider
}

func NewMotivationGenerator(ai llm.Provider) *MotivationGenerator {
	return &MotivationGenerator{ai: ai}
}

func (m *MotivationGenerator) Generate(ctx context.Context) (string, error) {
	raw, err := m.ai.Generate(ctx, constant.MotivationPromptTemplate, llm.WithTemperature(0.9))
	if err != nil {
		return "", fmt.Errorf("motivation completion: %w", err)
	}
	return CleanText(raw), nil
}
