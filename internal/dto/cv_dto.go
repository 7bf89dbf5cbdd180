package dto

import (
	"time"

	"github.com/google/uuid"
)

type CVAnalysisResponse struct {
	Id              uuid.UUID `json:"id"`
	FileName        string    `json:"file_name"`
	BasicScore      float64   `json:"basic_score"`
	AdvancedScore   float64   `json:"advanced_score"`
	FinalScore      float64   `json:"final_score"`
	FoundKeywords   []string  `json:"found_keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	Feedback        string    `json:"feedback"`
	Tips            []string  `json:"tips"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
}
