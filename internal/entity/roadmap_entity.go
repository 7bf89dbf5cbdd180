package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoadmapDocument is the typed learning-plan tree produced by the roadmap
// generator. It is parsed and validated once at the AI boundary; downstream
// code (topics, summaries, quizzes) works on this structure, never on raw
// JSON maps.
type RoadmapDocument struct {
	DiagramTitle string  `json:"diagramTitle"`
	MainStages   []Stage `json:"mainStages"`
}

type Stage struct {
	StageName string    `json:"stageName"`
	SubNodes  []SubNode `json:"subNodes"`
}

type SubNode struct {
	CentralNodeTitle string      `json:"centralNodeTitle"`
	LeftItems        []TopicItem `json:"leftItems"`
	RightItems       []TopicItem `json:"rightItems"`
}

// TopicItem ids are unique across the whole document; summaries look items
// up by id.
type TopicItem struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Roadmap struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Content   RoadmapDocument
	CreatedAt time.Time
	UpdatedAt time.Time
}
