package realtime

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialgram/domain/chat"
	"socialgram/domain/event"
	"socialgram/mocks"
	"socialgram/observability"
)

func TestMessageRouter_DeliverToConnectedRecipient(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := slog.Default()
	stats := observability.NewMonitoringManager(log)
	registry := NewConnectionRegistry(log)
	router := NewMessageRouter(log, registry, stats)

	// Given bob is connected
	sink := mocks.NewMockTransportSink(ctrl)
	registry.Connect("bob", sink)

	msg := chat.Message{
		ID:         uuid.New(),
		SenderID:   "alice",
		ReceiverID: "bob",
		Body:       "hello",
		CreatedAt:  time.Now().UTC(),
	}

	var delivered event.Envelope
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.Envelope) error {
			delivered = e
			return nil
		}).Times(1)

	// When a message event is routed to bob
	router.SendMessageEvent(context.Background(), "bob", msg)

	// Then the envelope carries the new_message payload
	req.Equal(event.KindNewMessage, delivered.Event)
	req.Equal(msg, delivered.Data)
	req.Equal(uint64(1), stats.GetLatest().EventsDelivered)
	req.Equal(uint64(0), stats.GetLatest().EventsDropped)
}

func TestMessageRouter_OfflineRecipientDropsSilently(t *testing.T) {
	req := require.New(t)

	log := slog.Default()
	stats := observability.NewMonitoringManager(log)
	registry := NewConnectionRegistry(log)
	router := NewMessageRouter(log, registry, stats)

	// When delivering to a user with no live transport
	router.DeliverTo(context.Background(), "offline-user", event.NewMessage(chat.Message{}))

	// Then the event is dropped and only the counter records it
	req.Equal(uint64(1), stats.GetLatest().EventsDropped)
	req.Equal(uint64(0), stats.GetLatest().EventsDelivered)
}

func TestMessageRouter_FailingTransportCountsAsDrop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := slog.Default()
	stats := observability.NewMonitoringManager(log)
	registry := NewConnectionRegistry(log)
	router := NewMessageRouter(log, registry, stats)

	// Given bob's transport rejects writes
	sink := mocks.NewMockTransportSink(ctrl)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(errors.New("broken pipe")).Times(1)
	registry.Connect("bob", sink)

	// When delivering
	router.DeliverTo(context.Background(), "bob", event.NewMessage(chat.Message{}))

	// Then the failure stays internal
	req.Equal(uint64(1), stats.GetLatest().EventsDropped)
	req.Equal(uint64(0), stats.GetLatest().EventsDelivered)
}
