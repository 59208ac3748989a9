// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/folio are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/folio/internal/core/blog"
	"github.com/taibuivan/folio/internal/core/experience"
	"github.com/taibuivan/folio/internal/core/message"
	"github.com/taibuivan/folio/internal/core/project"
	"github.com/taibuivan/folio/internal/core/siteconfig"
	"github.com/taibuivan/folio/internal/core/skill"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/media"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/resume"
	"github.com/taibuivan/folio/internal/session"
	"github.com/taibuivan/folio/internal/site"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once by the serve command with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler and always returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler and returns 200 when all backends answer.
	Readiness http.HandlerFunc

	Projects   *project.Handler
	Skills     *skill.Handler
	Experience *experience.Handler
	Blog       *blog.Handler
	Messages   *message.Handler
	SiteConfig *siteconfig.Handler
	Media      *media.Handler
	Session    *session.Handler
	Resume     *resume.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := newRouter(context, cfg, log, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Router exposes the handler tree, mostly for tests.
func (s *Server) Router() http.Handler { return s.router }

func newRouter(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		// Content (public reads, admin writes)
		api.Route("/projects", h.Projects.RegisterRoutes)
		api.Route("/skills", h.Skills.RegisterRoutes)
		api.Route("/experience", h.Experience.RegisterRoutes)
		api.Route("/blog", h.Blog.RegisterRoutes)
		api.Route("/site-config", h.SiteConfig.RegisterRoutes)
		api.Route("/site", site.RegisterRoutes)
		api.Route("/resume", h.Resume.RegisterRoutes)

		// Visitors
		api.Route("/contact", h.Messages.RegisterContactRoutes)

		// Sessions
		api.Route("/auth", h.Session.RegisterRoutes)

		// Admin only
		api.Route("/admin", func(admin chi.Router) {
			admin.Route("/blog", h.Blog.RegisterAdminRoutes)
			admin.Route("/messages", h.Messages.RegisterRoutes)
			admin.Route("/media", h.Media.RegisterRoutes)
		})
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
