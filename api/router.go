package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"socialgram/auth"
	"socialgram/contract"
	"socialgram/domain/event"
	apperrors "socialgram/errors"
	"socialgram/services"
)

// Handler carries the dependencies of every HTTP and websocket route.
type Handler struct {
	log              *slog.Logger
	registry         contract.IConnectionRegistry
	presence         contract.IPresenceBroadcaster
	chat             services.IChatService
	notifications    services.INotificationService
	tokens           *auth.TokenManager
	events           chan<- event.DomainEvent
	validate         *validator.Validate
	maxContentLength int
	sinkBufferSize   int
}

func NewHandler(log *slog.Logger,
	registry contract.IConnectionRegistry,
	presence contract.IPresenceBroadcaster,
	chat services.IChatService,
	notifications services.INotificationService,
	tokens *auth.TokenManager,
	events chan<- event.DomainEvent,
	maxContentLength, sinkBufferSize int) *Handler {
	return &Handler{
		log:              log,
		registry:         registry,
		presence:         presence,
		chat:             chat,
		notifications:    notifications,
		tokens:           tokens,
		events:           events,
		validate:         validator.New(),
		maxContentLength: maxContentLength,
		sinkBufferSize:   sinkBufferSize,
	}
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler, corsAllowedOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsAllowedOrigins,
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		// Upgrade requests stay open for the connection lifetime, logging
		// them on completion is just noise.
		Next: func(c *fiber.Ctx) bool { return websocket.IsWebSocketUpgrade(c) },
	}))

	app.Get("/health", h.health)

	ws := app.Group("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}, auth.RequireAuth(h.tokens))
	ws.Get("/:userID", h.guardOwnSocket, websocket.New(h.handleWebsocket))

	api := app.Group("/api/v1", auth.RequireAuth(h.tokens))
	api.Post("/message/send/:receiverID", h.sendMessage)
	api.Get("/message/conversation/:receiverID", h.getConversation)
	api.Get("/message/search", h.searchMessages)
	api.Post("/notify", h.notify)

	return app
}

// guardOwnSocket rejects sockets opened under another user's identity.
func (h *Handler) guardOwnSocket(c *fiber.Ctx) error {
	if auth.CurrentUser(c) != c.Params("userID") {
		return fiber.NewError(fiber.StatusForbidden, "cannot connect as another user")
	}
	return c.Next()
}

// errorHandler maps domain sentinels and fiber errors to HTTP responses.
// Anything unexpected is logged by the recover middleware and answered as a
// plain 500 without leaking internals.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, apperrors.ErrRecipientNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		code = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrMissingEventType):
		code = fiber.StatusBadRequest
		message = err.Error()
	}

	return c.Status(code).JSON(ErrorResponse{Success: false, Error: message})
}
