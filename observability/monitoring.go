package observability

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// DeliveryStats aggregates the realtime core counters for operators.
// Drops are expected under the best-effort contract; the counters make them
// observable without changing the caller-facing behavior.
type DeliveryStats struct {
	MessagesSent         uint64 `json:"messages_sent"`
	EventsDelivered      uint64 `json:"events_delivered"`
	EventsDropped        uint64 `json:"events_dropped"`
	PresenceBroadcasts   uint64 `json:"presence_broadcasts"`
	NotificationsSent    uint64 `json:"notifications_sent"`
	ConversationsCreated uint64 `json:"conversations_created"`
	OnlineUsers          int64  `json:"online_users"`
}

// MonitoringManager collects realtime telemetry with atomic counters.
type MonitoringManager struct {
	log *slog.Logger

	messagesSent         atomic.Uint64
	eventsDelivered      atomic.Uint64
	eventsDropped        atomic.Uint64
	presenceBroadcasts   atomic.Uint64
	notificationsSent    atomic.Uint64
	conversationsCreated atomic.Uint64
	onlineUsers          atomic.Int64
	startedAt            time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, startedAt: time.Now()}
}

func (mm *MonitoringManager) IncrMessagesSent()         { mm.messagesSent.Add(1) }
func (mm *MonitoringManager) IncrEventsDelivered()      { mm.eventsDelivered.Add(1) }
func (mm *MonitoringManager) IncrEventsDropped()        { mm.eventsDropped.Add(1) }
func (mm *MonitoringManager) IncrPresenceBroadcasts()   { mm.presenceBroadcasts.Add(1) }
func (mm *MonitoringManager) IncrNotificationsSent()    { mm.notificationsSent.Add(1) }
func (mm *MonitoringManager) IncrConversationsCreated() { mm.conversationsCreated.Add(1) }

func (mm *MonitoringManager) SetOnlineUsers(n int) { mm.onlineUsers.Store(int64(n)) }

func (mm *MonitoringManager) Uptime() time.Duration { return time.Since(mm.startedAt) }

// GetLatest returns a consistent-enough snapshot of all counters.
func (mm *MonitoringManager) GetLatest() DeliveryStats {
	return DeliveryStats{
		MessagesSent:         mm.messagesSent.Load(),
		EventsDelivered:      mm.eventsDelivered.Load(),
		EventsDropped:        mm.eventsDropped.Load(),
		PresenceBroadcasts:   mm.presenceBroadcasts.Load(),
		NotificationsSent:    mm.notificationsSent.Load(),
		ConversationsCreated: mm.conversationsCreated.Load(),
		OnlineUsers:          mm.onlineUsers.Load(),
	}
}
