// Package http wires the JSON API via Huma on top of the standard library
// mux.
package http

import (
	stdhttp "net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/getsentry/sentry-go"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"maqala/api/internal/article"
)

// Options configures the HTTP server wiring.
type Options struct {
	ArticleService article.Service
	Logger         *logrus.Logger
	SentryHub      *sentry.Hub
}

// Server wires the HTTP transport layer via Huma.
type Server struct {
	api      huma.API
	mux      *stdhttp.ServeMux
	articles article.Service
	logger   *logrus.Logger
	sentry   *sentry.Hub
}

// NewServer constructs the HTTP server.
func NewServer(opts Options) (*Server, error) {
	if opts.ArticleService == nil {
		return nil, eris.New("article service is required")
	}

	mux := stdhttp.NewServeMux()
	config := huma.DefaultConfig("Maqala", apiVersion)

	api := humago.New(mux, config)

	srv := &Server{
		api:      api,
		mux:      mux,
		articles: opts.ArticleService,
		logger:   opts.Logger,
		sentry:   opts.SentryHub,
	}

	srv.registerMiddlewares()
	srv.registerRoutes()

	return srv, nil
}

// Handler exposes the underlying HTTP handler for wiring into the application.
func (s *Server) Handler() stdhttp.Handler {
	return s.mux
}

// API exposes the underlying Huma API instance.
func (s *Server) API() huma.API {
	return s.api
}

func (s *Server) registerMiddlewares() {
	s.api.UseMiddleware(
		s.sentryMiddleware(),
		s.recoveryMiddleware(),
		s.requestIDMiddleware(),
		s.loggingMiddleware(),
	)
}

func (s *Server) registerRoutes() {
	s.registerSearchRoute()
	s.registerContentRoute()
	s.registerDepartmentRoute()
	s.registerHealthRoute()
}

func (s *Server) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	s.mux.ServeHTTP(w, r)
}
