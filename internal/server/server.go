// Package server exposes the counters as an HTTP JSON API.
//
// Route table:
//
//	GET /healthz                                   → liveness and build info
//	GET /v1/necklaces?partition=2,3,1&output=num   → necklaces of a partition
//	GET /v1/bracelets?partition=2,3,1&output=reps  → bracelets of a partition
//	GET /v1/configs?partition=2,2&group=Dn&cosets=true → quotient of the configuration set
//	GET /v1/orbit?arrangement=0,1,1,2&group=Cn     → orbit of one arrangement
//	GET /metrics                                   → Prometheus exposition
//
// Partitions may also be given as a bead word: ?word=aabbbc.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/necklace/pkg/pipeline"
)

// Options configures a Server.
type Options struct {
	// Runner executes computations. Required.
	Runner *pipeline.Runner

	// Logger receives request logs. Nil uses the runner's logger.
	Logger *log.Logger

	// MaxConfigs is passed to every run. Zero uses the pipeline default.
	MaxConfigs int64

	// Metrics serves /metrics when non-nil.
	Metrics http.Handler

	// RequestTimeout bounds each request. Zero uses DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// DefaultRequestTimeout bounds a single request.
const DefaultRequestTimeout = 60 * time.Second

// Server is the HTTP API.
type Server struct {
	runner     *pipeline.Runner
	logger     *log.Logger
	maxConfigs int64
	metrics    http.Handler
	timeout    time.Duration
}

// New creates a server from opts.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = opts.Runner.Logger
	}
	timeout := opts.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}
	return &Server{
		runner:     opts.Runner,
		logger:     logger,
		maxConfigs: opts.MaxConfigs,
		metrics:    opts.Metrics,
		timeout:    timeout,
	}
}

// Handler builds the router with all routes and middleware.
//
// Middleware chain (outermost first):
//
//	RequestID → Recoverer → observe → Timeout → handler
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/necklaces", s.handleNecklaces)
		r.Get("/bracelets", s.handleBracelets)
		r.Get("/configs", s.handleConfigs)
		r.Get("/orbit", s.handleOrbit)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed")
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
