package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/myxview/internal/app"
	"github.com/bobmcallan/myxview/internal/common"
)

// Server is the HTTP server for the market data API.
type Server struct {
	app        *app.App
	logger     *common.Logger
	httpServer *http.Server
}

// NewServer creates an HTTP server wired to the application's services.
func NewServer(a *app.App) *Server {
	s := &Server{
		app:    a,
		logger: a.Logger,
	}

	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler builds the routed handler with the standard middleware chain.
// Exposed so tests can exercise routes without binding a socket.
func (s *Server) Handler() http.Handler {
	return Chain(s.routes(),
		RecoveryMiddleware(s.logger),
		CORSMiddleware(),
		CorrelationIDMiddleware(),
		LoggingMiddleware(s.logger),
	)
}

// Start begins listening for HTTP requests. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
