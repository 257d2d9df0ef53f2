package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"socialgram/auth"
	"socialgram/domain"
	"socialgram/domain/chat"
	"socialgram/domain/event"
	apperrors "socialgram/errors"
	"socialgram/observability"
	"socialgram/realtime"
)

// chatStub lets each test script the service layer without the storage
// stack behind it.
type chatStub struct {
	sendFn   func(ctx context.Context, senderID, receiverID, body string) (chat.Message, error)
	getFn    func(ctx context.Context, userID, receiverID string) ([]chat.Message, error)
	searchFn func(ctx context.Context, userID, receiverID, query string) ([]chat.Message, error)
}

func (s chatStub) SendMessage(ctx context.Context, senderID, receiverID, body string) (chat.Message, error) {
	return s.sendFn(ctx, senderID, receiverID, body)
}

func (s chatStub) GetConversation(ctx context.Context, userID, receiverID string) ([]chat.Message, error) {
	return s.getFn(ctx, userID, receiverID)
}

func (s chatStub) SearchMessages(ctx context.Context, userID, receiverID, query string) ([]chat.Message, error) {
	return s.searchFn(ctx, userID, receiverID, query)
}

type notifyStub struct {
	notifyFn func(ctx context.Context, recipientID string, n domain.Notification) error
}

func (s notifyStub) Notify(ctx context.Context, recipientID string, n domain.Notification) error {
	return s.notifyFn(ctx, recipientID, n)
}

type apiFixture struct {
	app    *fiber.App
	tokens *auth.TokenManager
}

func newAPIFixture(t *testing.T, chatSvc chatStub, notifySvc notifyStub) apiFixture {
	t.Helper()
	log := slog.Default()
	stats := observability.NewMonitoringManager(log)
	registry := realtime.NewConnectionRegistry(log)
	presence := realtime.NewPresenceBroadcaster(log, registry, stats)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	events := make(chan event.DomainEvent, 8)

	handler := NewHandler(log, registry, presence, chatSvc, notifySvc, tokens, events, 5000, 16)
	return apiFixture{app: NewApp(handler, "http://localhost:3000"), tokens: tokens}
}

func TestSendMessage_PersistedAndAccepted(t *testing.T) {
	req := require.New(t)

	var gotSender, gotReceiver, gotBody string
	f := newAPIFixture(t, chatStub{
		sendFn: func(_ context.Context, senderID, receiverID, body string) (chat.Message, error) {
			gotSender, gotReceiver, gotBody = senderID, receiverID, body
			return chat.Message{
				ID:         uuid.New(),
				SenderID:   senderID,
				ReceiverID: receiverID,
				Body:       body,
				CreatedAt:  time.Now().UTC(),
			}, nil
		},
	}, notifyStub{})

	token, err := f.tokens.Generate("alice")
	req.NoError(err)

	request := httptest.NewRequest("POST", "/api/v1/message/send/bob",
		strings.NewReader(`{"message": "hello bob"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusCreated, resp.StatusCode)

	req.Equal("alice", gotSender)
	req.Equal("bob", gotReceiver)
	req.Equal("hello bob", gotBody)

	var payload SendMessageResponse
	data, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.NoError(json.Unmarshal(data, &payload))
	req.True(payload.Success)
	req.Equal("hello bob", payload.NewMessage.Body)
}

func TestSendMessage_ValidationFailures(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{}, notifyStub{})

	token, err := f.tokens.Generate("alice")
	req.NoError(err)

	// Empty body
	request := httptest.NewRequest("POST", "/api/v1/message/send/bob",
		strings.NewReader(`{"message": ""}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusBadRequest, resp.StatusCode)

	// Body over the content length limit
	request = httptest.NewRequest("POST", "/api/v1/message/send/bob",
		strings.NewReader(`{"message": "`+strings.Repeat("x", 5001)+`"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err = f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendMessage_UnknownRecipientIs404(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{
		sendFn: func(_ context.Context, _, _, _ string) (chat.Message, error) {
			return chat.Message{}, apperrors.ErrRecipientNotFound
		},
	}, notifyStub{})

	token, err := f.tokens.Generate("alice")
	req.NoError(err)

	request := httptest.NewRequest("POST", "/api/v1/message/send/ghost",
		strings.NewReader(`{"message": "anyone?"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusNotFound, resp.StatusCode)

	var payload ErrorResponse
	data, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.NoError(json.Unmarshal(data, &payload))
	req.False(payload.Success)
}

func TestGetConversation_ReturnsHistory(t *testing.T) {
	req := require.New(t)
	history := []chat.Message{{ID: uuid.New(), Body: "hi"}, {ID: uuid.New(), Body: "hey"}}
	f := newAPIFixture(t, chatStub{
		getFn: func(_ context.Context, userID, receiverID string) ([]chat.Message, error) {
			return history, nil
		},
	}, notifyStub{})

	token, err := f.tokens.Generate("alice")
	req.NoError(err)

	request := httptest.NewRequest("GET", "/api/v1/message/conversation/bob", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusOK, resp.StatusCode)

	var payload MessagesResponse
	data, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.NoError(json.Unmarshal(data, &payload))
	req.True(payload.Success)
	req.Len(payload.Messages, 2)
}

func TestSearchMessages_RequiresQueryParameters(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{}, notifyStub{})

	token, err := f.tokens.Generate("alice")
	req.NoError(err)

	request := httptest.NewRequest("GET", "/api/v1/message/search?q=harbor", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestNotify_RoutesToRecipient(t *testing.T) {
	req := require.New(t)

	var gotRecipient string
	var gotNotification domain.Notification
	f := newAPIFixture(t, chatStub{}, notifyStub{
		notifyFn: func(_ context.Context, recipientID string, n domain.Notification) error {
			gotRecipient = recipientID
			gotNotification = n
			return nil
		},
	})

	token, err := f.tokens.Generate("like-service")
	req.NoError(err)

	request := httptest.NewRequest("POST", "/api/v1/notify",
		strings.NewReader(`{"recipientId": "bob", "type": "like", "userId": "alice", "postId": "post-1"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusOK, resp.StatusCode)
	req.Equal("bob", gotRecipient)
	req.Equal("like", gotNotification.Type)
	req.Equal("alice", gotNotification.UserID)
}

func TestNotify_MissingTypeIsRejected(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{}, notifyStub{})

	token, err := f.tokens.Generate("like-service")
	req.NoError(err)

	request := httptest.NewRequest("POST", "/api/v1/notify",
		strings.NewReader(`{"recipientId": "bob"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.app.Test(request)
	req.NoError(err)
	req.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPI_RejectsUnauthenticatedRequests(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{}, notifyStub{})

	resp, err := f.app.Test(httptest.NewRequest("GET", "/api/v1/message/conversation/bob", nil))
	req.NoError(err)
	req.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebsocketRoute_RequiresUpgrade(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{}, notifyStub{})

	// A plain HTTP request to the socket route is refused before auth.
	resp, err := f.app.Test(httptest.NewRequest("GET", "/ws/alice", nil))
	req.NoError(err)
	req.Equal(fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	req := require.New(t)
	f := newAPIFixture(t, chatStub{}, notifyStub{})

	resp, err := f.app.Test(httptest.NewRequest("GET", "/health", nil))
	req.NoError(err)
	req.Equal(fiber.StatusOK, resp.StatusCode)

	var payload HealthResponse
	data, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.NoError(json.Unmarshal(data, &payload))
	req.Equal("ok", payload.Status)
	req.Zero(payload.OnlineUsers)
}
