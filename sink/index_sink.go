package sink

import (
	"context"
	"log/slog"

	"socialgram/domain/event"
	"socialgram/repositories"
)

// IndexSink feeds the full-text message index from the event fanout.
// Indexing failures are logged and dropped; the index is a side channel,
// not the source of truth.
type IndexSink struct {
	index repositories.IMessageIndex
	log   *slog.Logger
}

func NewIndexSink(index repositories.IMessageIndex, log *slog.Logger) IndexSink {
	return IndexSink{index: index, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageSent:
		if err := s.index.Index(evt.Message); err != nil {
			s.log.Warn("Failed to index message", "message", evt.Message.ID, "error", err)
		}
	}
	return nil
}
