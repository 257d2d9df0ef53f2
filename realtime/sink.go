package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"socialgram/domain/event"
	apperrors "socialgram/errors"
)

// WebsocketSink adapts one websocket connection into a TransportSink.
// Consume only enqueues: a dedicated write loop drains the buffer, so the
// registry lock is never held across a network write and a slow reader
// cannot block a sender. A full buffer counts as a delivery failure.
type WebsocketSink struct {
	log  *slog.Logger
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func NewWebsocketSink(log *slog.Logger, conn *websocket.Conn, bufferSize int) *WebsocketSink {
	s := &WebsocketSink{
		log:  log,
		conn: conn,
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

// Consume serializes the envelope and enqueues it without blocking.
func (s *WebsocketSink) Consume(ctx context.Context, e event.Envelope) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.enqueue(payload)
}

// ConsumeRaw enqueues a pre-encoded frame, e.g. the plain-text pong reply.
// Routing it through the same buffer keeps the write loop the only
// goroutine ever touching the connection for writes.
func (s *WebsocketSink) ConsumeRaw(payload []byte) error {
	return s.enqueue(payload)
}

func (s *WebsocketSink) enqueue(payload []byte) error {
	select {
	case <-s.done:
		return apperrors.ErrSinkClosed
	default:
	}
	select {
	case s.send <- payload:
		return nil
	default:
		return apperrors.ErrSlowConsumer
	}
}

func (s *WebsocketSink) writeLoop() {
	for {
		select {
		case <-s.done:
			return
		case payload := <-s.send:
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.log.Debug("Transport write failed, closing sink", "error", err)
				_ = s.Close()
				return
			}
		}
	}
}

// Close is idempotent and safe to call from any goroutine. It stops the
// write loop and closes the underlying connection, which also unblocks the
// connection's read loop.
func (s *WebsocketSink) Close() error {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
	return nil
}
