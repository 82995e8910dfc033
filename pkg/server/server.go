// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	POST /render   body is a page source; responds with text/troff
//	POST /escape   body is plain text; responds with the escaped text
//	GET  /healthz  liveness and build information
//
// /render accepts these query parameters:
//
//	format           toml, json or markdown (inferred from filename if absent)
//	filename         source name, e.g. tool.8.md, for markdown headers
//	title, section   markdown header overrides
//	date             markdown header date
//	manual_category  fill an empty manual argument from the section
//	refresh          bypass the page cache
//
// Every response carries an X-Request-ID header. Validation failures are
// answered with 400 and a JSON body naming the error code and field.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/roffman/pkg/pipeline"
)

// Defaults for [Config].
const (
	DefaultAddr         = "127.0.0.1:8080"
	DefaultMaxBodyBytes = pipeline.MaxSourceSize
	shutdownTimeout     = 10 * time.Second
)

// Config configures a [Server].
type Config struct {
	Addr         string
	MaxBodyBytes int64
	Timeout      time.Duration
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

// Server is the HTTP front end of a pipeline.Runner.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds a server. The runner's cache is shared by all requests.
func New(cfg Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	cfg.setDefaults()
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{cfg: cfg, runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Timeout))

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/escape", s.handleEscape)
	return r
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
