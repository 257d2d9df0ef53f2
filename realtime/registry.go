// Package realtime owns presence tracking and best-effort delivery to
// connected clients. It carries no business rules: persistence correctness
// never depends on anything in this package succeeding.
package realtime

import (
	"log/slog"
	"sync"

	"socialgram/contract"
)

// ConnectionRegistry maps a user id to its single live transport.
// It is constructed once in the composition root and passed by reference
// into every handler and connection loop that needs it; there is no
// package-level instance.
//
// The mutex protects only the map. Writing to a transport happens outside
// the lock: sinks buffer internally, so a slow client cannot stall
// registration or delivery to others.
type ConnectionRegistry struct {
	mu    sync.RWMutex
	log   *slog.Logger
	sinks map[string]contract.TransportSink
}

func NewConnectionRegistry(log *slog.Logger) *ConnectionRegistry {
	return &ConnectionRegistry{
		log:   log,
		sinks: make(map[string]contract.TransportSink),
	}
}

// Connect registers or replaces the transport for userID; last writer wins.
// A superseded transport is closed before being forgotten so a reconnecting
// client does not leak its previous connection.
func (r *ConnectionRegistry) Connect(userID string, sink contract.TransportSink) {
	r.mu.Lock()
	previous := r.sinks[userID]
	r.sinks[userID] = sink
	r.mu.Unlock()

	if previous != nil && previous != sink {
		r.log.Debug("Closing superseded transport", "user", userID)
		_ = previous.Close()
	}
}

// Disconnect removes the entry for userID; absent entries are a no-op.
// When a sink is given, the entry is only removed if it still maps to that
// sink: the deferred cleanup of a replaced connection must not evict its
// successor.
func (r *ConnectionRegistry) Disconnect(userID string, sink contract.TransportSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sinks[userID]
	if !ok {
		return
	}
	if sink != nil && current != sink {
		return
	}
	delete(r.sinks, userID)
}

// Lookup returns the live transport for userID, if any. Never blocks beyond
// the registry lock.
func (r *ConnectionRegistry) Lookup(userID string) (contract.TransportSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sinks[userID]
	return sink, ok
}

// SnapshotKeys returns a copy of the current presence set. Callers iterate
// the copy while the registry keeps mutating underneath.
func (r *ConnectionRegistry) SnapshotKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.sinks))
	for userID := range r.sinks {
		keys = append(keys, userID)
	}
	return keys
}
