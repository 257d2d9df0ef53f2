package realtime

import (
	"context"
	"log/slog"

	"socialgram/contract"
	"socialgram/domain/event"
	"socialgram/observability"
)

// PresenceBroadcaster pushes the derived online-user set to every connected
// client. The set is recomputed from the registry on each call, never
// cached. Invoked eagerly on every connect and disconnect.
type PresenceBroadcaster struct {
	log      *slog.Logger
	registry contract.IConnectionRegistry
	stats    *observability.MonitoringManager
}

func NewPresenceBroadcaster(log *slog.Logger, registry contract.IConnectionRegistry,
	stats *observability.MonitoringManager) *PresenceBroadcaster {
	return &PresenceBroadcaster{log: log, registry: registry, stats: stats}
}

// BroadcastOnlineUsers fans one online_users envelope to all registered
// transports. Per-recipient failures are counted and skipped: a stale
// client must not abort delivery to the rest, so this operation cannot fail
// as a whole.
func (b *PresenceBroadcaster) BroadcastOnlineUsers(ctx context.Context) {
	online := b.registry.SnapshotKeys()
	envelope := event.OnlineUsers(online)

	for _, userID := range online {
		sink, ok := b.registry.Lookup(userID)
		if !ok {
			// Disconnected between snapshot and fan-out.
			continue
		}
		if err := sink.Consume(ctx, envelope); err != nil {
			b.stats.IncrEventsDropped()
			b.log.Debug("Presence push failed", "user", userID, "error", err)
			continue
		}
		b.stats.IncrEventsDelivered()
	}

	b.stats.IncrPresenceBroadcasts()
	b.stats.SetOnlineUsers(len(online))
}
