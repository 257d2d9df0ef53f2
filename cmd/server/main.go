package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"socialgram/api"
	"socialgram/auth"
	"socialgram/domain/event"
	"socialgram/internal"
	"socialgram/moderation"
	"socialgram/observability"
	"socialgram/projection"
	"socialgram/realtime"
	"socialgram/repositories"
	"socialgram/runtime/workers"
	"socialgram/services"
	"socialgram/sink"
)

const presenceTimelineSize = 256

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	// Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	indexWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = indexWriter.Close()
	}()

	// 3. Realtime core
	stats := observability.NewMonitoringManager(log)
	registry := realtime.NewConnectionRegistry(log)
	presence := realtime.NewPresenceBroadcaster(log, registry, stats)
	router := realtime.NewMessageRouter(log, registry, stats)

	// 4. Repositories & services
	userRepository := repositories.NewUserRepository(db)
	conversationRepository := repositories.NewConversationRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	messageIndex := repositories.NewMessageIndex(indexWriter, log)

	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.CensoredWordList(), censoredChar)
	if err != nil {
		return fmt.Errorf("moderation dictionary failed to build: %w", err)
	}

	events := make(chan event.DomainEvent, config.BufferSize)
	resolver := services.NewConversationResolver(log, conversationRepository, userRepository, stats)
	chatService := services.NewChatService(log, resolver, conversationRepository, messageRepository,
		messageIndex, moderator, router, events, stats, config.SearchLimit)
	notificationService := services.NewNotificationService(log, userRepository, router, stats)

	// 5. HTTP surface
	tokens := auth.NewTokenManager(config.AuthSecret, config.AuthTokenDuration)
	handler := api.NewHandler(log, registry, presence, chatService, notificationService,
		tokens, events, config.MaxContentLength, config.ConnectionBufferSize)
	app := api.NewApp(handler, config.CorsAllowedOrigins)
	server := api.NewServer(log, app, config.Addr())

	// 6. Background workers
	timeline := projection.NewPresenceTimeline(presenceTimelineSize)
	fanout := workers.NewEventFanout(log, events).
		Add(sink.NewIndexSink(messageIndex, log), timeline)
	heartbeat := workers.NewHeartbeatWorker(log, stats, config.MetricInterval)

	if strings.EqualFold(config.LogLevel, "debug") {
		internal.StartDebugServer(log, db, config.Port+1, func() map[string]any {
			latest := stats.GetLatest()
			return map[string]any{
				"uptime":                stats.Uptime().Round(time.Second).String(),
				"online_users":          latest.OnlineUsers,
				"messages_sent":         latest.MessagesSent,
				"events_delivered":      latest.EventsDelivered,
				"events_dropped":        latest.EventsDropped,
				"presence_broadcasts":   latest.PresenceBroadcasts,
				"conversations_created": latest.ConversationsCreated,
				"presence_changes":      len(timeline.Recent()),
			}
		})
	}

	// 7. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 8. Supervised run until signal
	sup := workers.NewSupervisor(log)
	sup.Add(server, fanout, heartbeat)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
