package event

import (
	"time"

	"socialgram/domain/chat"
)

// DomainEvent is an in-process fact fanned out to observability sinks
// (search index, presence timeline, telemetry). Domain events never drive
// the delivery path itself; dropping one loses a side effect, not a message.
type DomainEvent interface {
	OccurredAt() time.Time
}

type MessageSent struct {
	Message       chat.Message
	Lang          string
	CensoredWords []string
}

func (e MessageSent) OccurredAt() time.Time { return e.Message.CreatedAt }

type UserConnected struct {
	UserID string
	At     time.Time
}

func (e UserConnected) OccurredAt() time.Time { return e.At }

type UserDisconnected struct {
	UserID string
	At     time.Time
}

func (e UserDisconnected) OccurredAt() time.Time { return e.At }
