package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 5 * time.Second

// Server runs the fiber application as a supervised worker.
type Server struct {
	log  *slog.Logger
	app  *fiber.App
	addr string
}

func NewServer(log *slog.Logger, app *fiber.App, addr string) *Server {
	return &Server{log: log, app: app, addr: addr}
}

// Run listens until the context is canceled, then drains in-flight requests
// before returning. A listener error surfaces to the supervisor.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.addr)
	}()
	s.log.Info("HTTP server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("Shutting down HTTP server")
		return s.app.ShutdownWithContext(shutdownCtx)
	}
}
