package api

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"socialgram/auth"
	"socialgram/domain"
	"socialgram/domain/event"
	"socialgram/realtime"
)

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:      "ok",
		OnlineUsers: len(h.registry.SnapshotKeys()),
	})
}

// sendMessage handles POST /api/v1/message/send/:receiverID.
// The 201 only certifies the write: realtime delivery to the receiver is
// best-effort and has already been attempted (or dropped) by the time the
// response leaves.
func (h *Handler) sendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}
	if utf8.RuneCountInString(req.Message) > h.maxContentLength {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("message exceeds %d characters", h.maxContentLength))
	}

	msg, err := h.chat.SendMessage(c.UserContext(), auth.CurrentUser(c), c.Params("receiverID"), req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(SendMessageResponse{Success: true, NewMessage: msg})
}

// getConversation handles GET /api/v1/message/conversation/:receiverID.
// No conversation yet means an empty list, never a creation.
func (h *Handler) getConversation(c *fiber.Ctx) error {
	messages, err := h.chat.GetConversation(c.UserContext(), auth.CurrentUser(c), c.Params("receiverID"))
	if err != nil {
		return err
	}
	return c.JSON(MessagesResponse{Success: true, Messages: messages})
}

// searchMessages handles GET /api/v1/message/search?q=...&with=...
func (h *Handler) searchMessages(c *fiber.Ctx) error {
	query := c.Query("q")
	withUser := c.Query("with")
	if query == "" || withUser == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q and with query parameters are required")
	}

	messages, err := h.chat.SearchMessages(c.UserContext(), auth.CurrentUser(c), withUser, query)
	if err != nil {
		return err
	}
	return c.JSON(MessagesResponse{Success: true, Messages: messages})
}

// notify handles POST /api/v1/notify, the entry point for the social
// subsystems (likes, comments, follows) pushing realtime notifications.
func (h *Handler) notify(c *fiber.Ctx) error {
	var req NotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "recipientId and type are required")
	}

	n := domain.Notification{
		Type:    req.Type,
		UserID:  req.UserID,
		PostID:  req.PostID,
		Message: req.Message,
	}
	if err := h.notifications.Notify(c.UserContext(), req.RecipientID, n); err != nil {
		return err
	}
	return c.JSON(SuccessResponse{Success: true})
}

// handleWebsocket owns one client connection from registration to cleanup.
// The read loop only answers text "ping" frames; everything a client wants
// to do besides keepalive goes through the REST API.
func (h *Handler) handleWebsocket(conn *websocket.Conn) {
	userID := conn.Params("userID")
	ctx := context.Background()

	sink := realtime.NewWebsocketSink(h.log, conn, h.sinkBufferSize)
	h.registry.Connect(userID, sink)
	h.presence.BroadcastOnlineUsers(ctx)
	h.publish(event.UserConnected{UserID: userID, At: time.Now().UTC()})
	h.log.Info("User connected", "user", userID)

	defer func() {
		// Disconnect is a no-op when a newer socket already replaced this
		// sink in the registry.
		h.registry.Disconnect(userID, sink)
		_ = sink.Close()
		h.presence.BroadcastOnlineUsers(ctx)
		h.publish(event.UserDisconnected{UserID: userID, At: time.Now().UTC()})
		h.log.Info("User disconnected", "user", userID)
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType == websocket.TextMessage && string(payload) == "ping" {
			if err := sink.ConsumeRaw([]byte("pong")); err != nil {
				return
			}
		}
	}
}

func (h *Handler) publish(e event.DomainEvent) {
	select {
	case h.events <- e:
	default:
		h.log.Debug("Domain event channel full, dropping event")
	}
}
