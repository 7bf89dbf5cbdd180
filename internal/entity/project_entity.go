package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a candidate project a user submitted for evaluation. Evaluation
// holds the raw review JSON produced by the evaluator; "{}" means the model
// could not produce a usable review.
type Project struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description *string
	Evaluation  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
