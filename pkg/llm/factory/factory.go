package factory

import (
	"fmt"

	"yolcu-backend/pkg/llm"
	"yolcu-backend/pkg/llm/gemini"
	"yolcu-backend/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, ollamaBaseURL, geminiAPIKey string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(geminiAPIKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
