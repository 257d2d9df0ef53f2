package projection

import (
	"context"
	"sync"
	"time"

	"socialgram/domain/event"
)

// PresenceChange is one connect/disconnect observation.
type PresenceChange struct {
	UserID string    `json:"user_id"`
	Online bool      `json:"online"`
	At     time.Time `json:"at"`
}

// PresenceTimeline keeps the most recent presence changes for the debug
// inspector. It is a lossy ring: only the last maxEntries changes survive.
type PresenceTimeline struct {
	mu         sync.Mutex
	maxEntries int
	changes    []PresenceChange
}

func NewPresenceTimeline(maxEntries int) *PresenceTimeline {
	return &PresenceTimeline{maxEntries: maxEntries}
}

func (t *PresenceTimeline) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.UserConnected:
		t.append(PresenceChange{UserID: evt.UserID, Online: true, At: evt.At})
	case event.UserDisconnected:
		t.append(PresenceChange{UserID: evt.UserID, Online: false, At: evt.At})
	}
	return nil
}

// Recent returns a copy of the retained changes, most recent last.
func (t *PresenceTimeline) Recent() []PresenceChange {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]PresenceChange, len(t.changes))
	copy(out, t.changes)
	return out
}

func (t *PresenceTimeline) append(change PresenceChange) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.changes = append(t.changes, change)
	if len(t.changes) > t.maxEntries {
		t.changes = t.changes[len(t.changes)-t.maxEntries:]
	}
}
