package realtime

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"socialgram/mocks"
)

func TestConnectionRegistry_ConnectReplacesAndClosesPrevious(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewConnectionRegistry(slog.Default())

	// Given a user already connected through a first transport
	first := mocks.NewMockTransportSink(ctrl)
	second := mocks.NewMockTransportSink(ctrl)
	registry.Connect("alice", first)

	// Then reconnecting closes the superseded transport
	first.EXPECT().Close().Return(nil).Times(1)

	// When the same user connects again
	registry.Connect("alice", second)

	// Then the registry maps the user to the newest transport
	sink, ok := registry.Lookup("alice")
	req.True(ok)
	req.Same(second, sink)
	req.Equal([]string{"alice"}, registry.SnapshotKeys())
}

func TestConnectionRegistry_DisconnectOnlyEvictsMatchingSink(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewConnectionRegistry(slog.Default())

	first := mocks.NewMockTransportSink(ctrl)
	second := mocks.NewMockTransportSink(ctrl)
	first.EXPECT().Close().Return(nil).Times(1)

	// Given a reconnect where the new socket replaced the old one
	registry.Connect("alice", first)
	registry.Connect("alice", second)

	// When the old socket's deferred cleanup fires
	registry.Disconnect("alice", first)

	// Then the successor stays registered
	sink, ok := registry.Lookup("alice")
	req.True(ok)
	req.Same(second, sink)

	// When the current socket disconnects
	registry.Disconnect("alice", second)

	// Then the user is offline
	_, ok = registry.Lookup("alice")
	req.False(ok)
	req.Empty(registry.SnapshotKeys())
}

func TestConnectionRegistry_DisconnectUnknownUserIsNoOp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewConnectionRegistry(slog.Default())
	sink := mocks.NewMockTransportSink(ctrl)

	// When disconnecting a user that never connected
	registry.Disconnect("ghost", sink)

	// Then nothing changes
	req.Empty(registry.SnapshotKeys())
}

func TestConnectionRegistry_SnapshotIsACopy(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewConnectionRegistry(slog.Default())
	registry.Connect("alice", mocks.NewMockTransportSink(ctrl))
	registry.Connect("bob", mocks.NewMockTransportSink(ctrl))

	snapshot := registry.SnapshotKeys()
	req.ElementsMatch([]string{"alice", "bob"}, snapshot)

	// When the caller mutates its copy
	snapshot[0] = "mallory"

	// Then the registry is unaffected
	req.ElementsMatch([]string{"alice", "bob"}, registry.SnapshotKeys())
}
