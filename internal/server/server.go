// Package server is the HTTP solve backend: one chain-of-thought program
// per model variant behind POST /solve/{variant}.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathduel/internal/llm"
	"github.com/abhisek/mathduel/internal/metrics"
	"github.com/abhisek/mathduel/internal/program"
	"github.com/abhisek/mathduel/internal/solver"
)

// Options configures a Server.
type Options struct {
	Provider llm.Provider

	// Programs maps each loaded variant to its program. A variant missing
	// from the map answers 503.
	Programs map[solver.Variant]*program.Program

	Settings program.Settings
	Logger   zerolog.Logger

	// RequestTimeout bounds each request. Zero disables the bound.
	RequestTimeout time.Duration
}

// Server serves the solve API.
type Server struct {
	provider llm.Provider
	programs map[solver.Variant]*program.Program
	settings program.Settings
	logger   zerolog.Logger
	router   chi.Router
}

// New builds a Server and its routes.
func New(opts Options) (*Server, error) {
	if opts.Provider == nil {
		return nil, errors.New("server: provider is required")
	}

	s := &Server{
		provider: opts.Provider,
		programs: make(map[solver.Variant]*program.Program, len(opts.Programs)),
		settings: opts.Settings,
		logger:   opts.Logger,
	}
	for v, p := range opts.Programs {
		if !v.Valid() {
			return nil, fmt.Errorf("server: unknown variant %q", v)
		}
		if p != nil {
			s.programs[v] = p
		}
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.accessLog,
		middleware.Recoverer,
		metrics.Middleware,
	)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Post("/solve/{variant}", s.handleSolve)
	r.Get("/status", s.handleStatus)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	s.router = r
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for up to shutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server started")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}

// accessLog echoes the request id and writes one zerolog line per
// request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set(solver.RequestIDHeader, middleware.GetReqID(r.Context()))
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		ev := s.logger.Info()
		if status >= http.StatusInternalServerError {
			ev = s.logger.Warn()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("remote", r.RemoteAddr).
			Msg("http request")
	})
}
