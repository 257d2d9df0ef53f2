package workers

import (
	"context"
	"log/slog"

	"socialgram/contract"
	"socialgram/domain/event"
)

// EventFanout broadcasts domain events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for side effects (search indexing, presence timeline,
// telemetry), not for core domain logic.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	Log         *slog.Logger
	DomainEvent chan event.DomainEvent
	sinks       []contract.EventSink
}

func NewEventFanout(log *slog.Logger, domainEvent chan event.DomainEvent) *EventFanout {
	return &EventFanout{Log: log, DomainEvent: domainEvent}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.DomainEvent:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping domainEvent send")
			return nil
		}
	}
}

// Fanout One sink for each event. A sink error never stops the others.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.Log.Debug("Event sink failed", "error", err)
		}
	}
}
