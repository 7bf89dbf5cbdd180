package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a persisted room message. Exactly one of HackathonId or
// TeamId is set, depending on which room the message was sent to.
type ChatMessage struct {
	Id          uuid.UUID
	Content     string
	UserId      uuid.UUID
	HackathonId *uuid.UUID
	TeamId      *uuid.UUID
	CreatedAt   time.Time
}
