package realtime

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialgram/domain/event"
	"socialgram/mocks"
	"socialgram/observability"
)

func TestPresenceBroadcaster_AllConnectedUsersReceiveTheSet(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := slog.Default()
	stats := observability.NewMonitoringManager(log)
	registry := NewConnectionRegistry(log)
	broadcaster := NewPresenceBroadcaster(log, registry, stats)

	// Given two connected users
	received := make([]event.Envelope, 0, 2)
	for _, userID := range []string{"alice", "bob"} {
		sink := mocks.NewMockTransportSink(ctrl)
		sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e event.Envelope) error {
				received = append(received, e)
				return nil
			}).Times(1)
		registry.Connect(userID, sink)
	}

	// When presence is broadcast
	broadcaster.BroadcastOnlineUsers(context.Background())

	// Then both sinks observed the same online_users set
	req.Len(received, 2)
	for _, envelope := range received {
		req.Equal(event.KindOnlineUsers, envelope.Event)
		req.ElementsMatch([]string{"alice", "bob"}, envelope.Data)
	}
	req.Equal(int64(2), stats.GetLatest().OnlineUsers)
	req.Equal(uint64(1), stats.GetLatest().PresenceBroadcasts)
}

func TestPresenceBroadcaster_OneFailingSinkDoesNotAbortTheRest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := slog.Default()
	stats := observability.NewMonitoringManager(log)
	registry := NewConnectionRegistry(log)
	broadcaster := NewPresenceBroadcaster(log, registry, stats)

	// Given alice's transport is broken and bob's is fine
	failing := mocks.NewMockTransportSink(ctrl)
	failing.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(errors.New("gone")).Times(1)
	registry.Connect("alice", failing)

	healthy := mocks.NewMockTransportSink(ctrl)
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	registry.Connect("bob", healthy)

	// When presence is broadcast
	broadcaster.BroadcastOnlineUsers(context.Background())

	// Then bob still got the event and the drop was counted
	req.Equal(uint64(1), stats.GetLatest().EventsDropped)
	req.Equal(uint64(1), stats.GetLatest().EventsDelivered)
}
