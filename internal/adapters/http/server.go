package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mwhitaker/statekit/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps http.Server with logging and graceful shutdown.
type Server struct {
	inner  *http.Server
	logger *slog.Logger
}

// NewServer builds a server listening on the configured host and port with
// the configured read, write, and idle timeouts.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	inner := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return &Server{inner: inner, logger: logger}
}

// Start serves requests until the server stops, blocking the caller.
// A graceful shutdown yields a nil return.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", slog.String("addr", s.inner.Addr))

	err := s.inner.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting new connections and waits for in-flight requests
// within the ctx deadline. A ctx without a deadline gets a 10-second one.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	return s.inner.Shutdown(ctx)
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	return s.inner.Addr
}
