package realtime

import (
	"context"
	"log/slog"

	"socialgram/contract"
	"socialgram/domain"
	"socialgram/domain/chat"
	"socialgram/domain/event"
	"socialgram/observability"
)

// MessageRouter delivers one envelope to one recipient, at most once.
// No retry, no queue, no acknowledgement: an event is either observed by a
// currently connected client or lost. Drops are visible to operators
// through counters and debug logs only; callers never see them.
type MessageRouter struct {
	log      *slog.Logger
	registry contract.IConnectionRegistry
	stats    *observability.MonitoringManager
}

func NewMessageRouter(log *slog.Logger, registry contract.IConnectionRegistry,
	stats *observability.MonitoringManager) *MessageRouter {
	return &MessageRouter{log: log, registry: registry, stats: stats}
}

func (r *MessageRouter) DeliverTo(ctx context.Context, userID string, e event.Envelope) {
	sink, ok := r.registry.Lookup(userID)
	if !ok {
		r.stats.IncrEventsDropped()
		r.log.Debug("Recipient offline, dropping event", "user", userID, "event", e.Event)
		return
	}
	if err := sink.Consume(ctx, e); err != nil {
		r.stats.IncrEventsDropped()
		r.log.Debug("Transport send failed, dropping event",
			"user", userID, "event", e.Event, "error", err)
		return
	}
	r.stats.IncrEventsDelivered()
}

func (r *MessageRouter) SendMessageEvent(ctx context.Context, receiverID string, msg chat.Message) {
	r.DeliverTo(ctx, receiverID, event.NewMessage(msg))
}

func (r *MessageRouter) SendNotification(ctx context.Context, userID string, n domain.Notification) {
	r.DeliverTo(ctx, userID, event.Notification(n))
}
