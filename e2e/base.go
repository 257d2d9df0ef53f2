package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"socialgram/api"
	"socialgram/auth"
	"socialgram/domain"
	"socialgram/domain/event"
	"socialgram/moderation"
	"socialgram/observability"
	"socialgram/projection"
	"socialgram/realtime"
	"socialgram/repositories"
	"socialgram/runtime/workers"
	"socialgram/services"
	"socialgram/sink"
)

const (
	readTimeout = 2 * time.Second
)

// BaseSuite boots the full server stack in-process on a random loopback
// port and exposes helpers to drive it over HTTP and websocket, exactly
// like a browser client would.
type BaseSuite struct {
	suite.Suite
	Config Config

	addr    string
	tokens  *auth.TokenManager
	users   repositories.IUserRepository
	stats   *observability.MonitoringManager
	cleanup []func()
}

func (s *BaseSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err, "Unable to load config")
	s.Config = cfg

	log := logs.GetLoggerFromLevel(slog.LevelWarn)

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	s.Require().NoError(err)
	s.onTearDown(func() { _ = db.Close() })

	indexWriter, err := bluge.OpenWriter(bluge.DefaultConfig(s.T().TempDir()))
	s.Require().NoError(err)
	s.onTearDown(func() { _ = indexWriter.Close() })

	s.stats = observability.NewMonitoringManager(log)
	registry := realtime.NewConnectionRegistry(log)
	presence := realtime.NewPresenceBroadcaster(log, registry, s.stats)
	router := realtime.NewMessageRouter(log, registry, s.stats)

	s.users = repositories.NewUserRepository(db)
	conversations := repositories.NewConversationRepository(db)
	messages := repositories.NewMessageRepository(db, log, lo.ToPtr(100))
	index := repositories.NewMessageIndex(indexWriter, log)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	s.Require().NoError(err)

	events := make(chan event.DomainEvent, 32)
	resolver := services.NewConversationResolver(log, conversations, s.users, s.stats)
	chatService := services.NewChatService(log, resolver, conversations, messages,
		index, moderator, router, events, s.stats, 50)
	notificationService := services.NewNotificationService(log, s.users, router, s.stats)

	s.tokens = auth.NewTokenManager(cfg.AuthSecret, time.Hour)
	handler := api.NewHandler(log, registry, presence, chatService,
		notificationService, s.tokens, events, 5000, 16)
	app := api.NewApp(handler, "http://localhost:3000")

	fanout := workers.NewEventFanout(log, events).
		Add(sink.NewIndexSink(index, log), projection.NewPresenceTimeline(64))
	fanoutCtx, cancelFanout := context.WithCancel(context.Background())
	s.onTearDown(cancelFanout)
	go func() { _ = fanout.Run(fanoutCtx) }()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	s.addr = listener.Addr().String()
	go func() { _ = app.Listener(listener) }()
	s.onTearDown(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = app.ShutdownWithContext(ctx)
	})
}

func (s *BaseSuite) TearDownSuite() {
	// Reverse order so the server stops before its storage closes.
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

func (s *BaseSuite) onTearDown(fn func()) {
	s.cleanup = append(s.cleanup, fn)
}

// LogStep displays a colored separator for each scenario step.
func (s *BaseSuite) LogStep(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// SeedUser creates an account directly in storage and mints its token.
func (s *BaseSuite) SeedUser(username, password string) (domain.User, string) {
	hash, err := auth.HashPassword(password)
	s.Require().NoError(err)

	user, err := s.users.CreateUser(username, "", hash)
	s.Require().NoError(err)

	token, err := s.tokens.Generate(user.ID)
	s.Require().NoError(err)
	return user, token
}

// DialSocket opens an authenticated websocket as the given user.
func (s *BaseSuite) DialSocket(userID, token string) *websocket.Conn {
	url := fmt.Sprintf("ws://%s/ws/%s", s.addr, userID)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	s.Require().NoError(err, "websocket dial failed for %s", userID)
	return conn
}

// NextFrame reads one raw frame with a deadline.
func (s *BaseSuite) NextFrame(conn *websocket.Conn) []byte {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(readTimeout)))
	_, payload, err := conn.ReadMessage()
	s.Require().NoError(err, "expected a websocket frame")
	return payload
}

// NextEvent reads frames until one carries the wanted event kind,
// skipping unrelated broadcasts that may interleave.
func (s *BaseSuite) NextEvent(conn *websocket.Conn, kind string) json.RawMessage {
	for attempt := 0; attempt < 10; attempt++ {
		payload := s.NextFrame(conn)

		var envelope struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(payload, &envelope); err != nil {
			// Not an envelope (e.g. a pong), keep reading.
			continue
		}
		if envelope.Event == kind {
			return envelope.Data
		}
	}
	s.Require().Failf("event not received", "no %q event within %d frames", kind, 10)
	return nil
}

// DoJSON performs an authenticated HTTP call and returns status and body.
func (s *BaseSuite) DoJSON(method, path, token string, body any) (int, []byte) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", s.addr, path), reader)
	s.Require().NoError(err)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(request)
	s.Require().NoError(err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	if s.Config.DebugJSON {
		s.T().Logf("%s %s -> %d %s", method, path, resp.StatusCode, string(payload))
	}
	return resp.StatusCode, payload
}
