//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"socialgram/domain"
	"socialgram/domain/chat"
	"socialgram/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// TransportSink is one client's live realtime channel. Consume must never
// block on transport I/O: implementations buffer and drain from their own
// write loop, so the registry lock is never held across a network write.
type TransportSink interface {
	Consume(ctx context.Context, e event.Envelope) error
	Close() error
}

// EventSink consumes in-process domain events fanned out for side effects
// (indexing, timelines, telemetry).
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IConnectionRegistry tracks the single live transport per user.
type IConnectionRegistry interface {
	Connect(userID string, sink TransportSink)
	Disconnect(userID string, sink TransportSink)
	Lookup(userID string) (TransportSink, bool)
	SnapshotKeys() []string
}

type IPresenceBroadcaster interface {
	BroadcastOnlineUsers(ctx context.Context)
}

// IMessageRouter delivers envelopes to one recipient, at most once.
// Delivery never fails from the caller's point of view: an unreachable
// recipient means the envelope is dropped.
type IMessageRouter interface {
	DeliverTo(ctx context.Context, userID string, e event.Envelope)
	SendMessageEvent(ctx context.Context, receiverID string, msg chat.Message)
	SendNotification(ctx context.Context, userID string, n domain.Notification)
}
