package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/getstubd/stubd/pkg/config"
	"github.com/getstubd/stubd/pkg/fixture"
	"github.com/getstubd/stubd/pkg/logging"
	"github.com/getstubd/stubd/pkg/schema"
)

// Server is the stub server: the dispatch Handler wrapped in request
// logging, bound to a listener with a managed lifecycle.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	handler *Handler

	httpServer *http.Server
	listener   net.Listener

	mu      sync.RWMutex
	running bool
}

// NewServer builds a Server from configuration plus the loaded spec and
// fixture store. Overrides are registered on s.Overrides() before Start.
func NewServer(cfg *config.Config, spec *schema.Spec, store *fixture.Store, opts ...HandlerOption) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: logging.ParseFormat(cfg.Logging.Format),
	})

	opts = append([]HandlerOption{
		WithRequestValidation(cfg.ValidateRequests),
		WithLogger(log),
	}, opts...)

	handler, err := NewHandler(spec, store, opts...)
	if err != nil {
		return nil, err
	}

	return &Server{cfg: cfg, log: log, handler: handler}, nil
}

// Overrides returns the override table for registration during test setup.
func (s *Server) Overrides() *Overrides {
	return s.handler.Overrides()
}

// Handler returns the dispatch handler, for plugging into a test's own
// transport instead of a real listener.
func (s *Server) Handler() http.Handler {
	return RequestLogging(s.log)(s.handler)
}

// Start binds the listener and serves in the background. Port 0 asks the
// OS for a free port; URL reports the resolved address.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}

	s.log.Info("starting stub server", "addr", listener.Addr().String())
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("stub server error", "error", err)
		}
	}()

	s.running = true
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down stub server: %w", err)
	}
	return nil
}

// IsRunning reports whether the server is accepting requests.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// URL returns the base URL of the running server, or "" before Start.
func (s *Server) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}
