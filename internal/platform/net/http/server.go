package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"interventions/internal/platform/config"
	"interventions/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// DefaultAddr is used when API_PORT is unset
const DefaultAddr = ":4000"

const defaultGrace = 10 * time.Second

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server
	ready chan net.Addr
}

// NewServer reads API_PORT and SHUTDOWN_GRACE from cfg.
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MustAddr("API_PORT", DefaultAddr)
	m := chi.NewRouter()
	m.NotFound(NotFound)
	m.MethodNotAllowed(MethodNotAllowed)
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", defaultGrace),
		mux:   m,
		ready: make(chan net.Addr, 1),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listening address
func (s *Server) Addr() string { return s.addr }

// Ready yields the bound address once the listener is up
func (s *Server) Ready() <-chan net.Addr { return s.ready }

// Run listens until ctx is cancelled, then drains in-flight requests for at most the grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")
	s.ready <- ln.Addr()

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
