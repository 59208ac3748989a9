// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/api"
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
	"github.com/taibuivan/folio/internal/platform/notify"
	redisstore "github.com/taibuivan/folio/internal/platform/redis"
	"github.com/taibuivan/folio/internal/resume"
	"github.com/taibuivan/folio/internal/session"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until SIGINT or SIGTERM.

Startup Sequence:
  1. Load configuration and build the logger.
  2. Connect the document store (postgres runs migrations first).
  3. Connect Redis for admin sessions (in-memory sessions in development).
  4. Wire identity provider, session manager and domain handlers.
  5. Serve, then drain in-flight requests on shutdown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(parent context.Context, cfg *config.Config, log *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreDriver),
	)

	// Background work (rate limiter cleanup, JWKS refresh) stops with rootCtx.
	rootCtx, cancelRoot := context.WithCancel(parent)
	defer cancelRoot()

	// Use a deadline so misconfiguration is caught quickly rather than hanging.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── Document store ────────────────────────────────────────────────────
	store, err := openStore(startupCtx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("closing_document_store")
		store.Close()
	}()

	checks := []api.Check{{Name: "docstore", Probe: store.Ping}}

	// ── Sessions ──────────────────────────────────────────────────────────
	var sessions session.Store
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		sessions = session.NewRedisStore(rdb)
		checks = append(checks, api.Check{Name: "redis", Probe: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}})
	} else {
		if cfg.IsProduction() {
			return errors.New("REDIS_URL is required in production")
		}
		log.Warn("session_store_in_memory")
		sessions = session.NewMemoryStore(nil)
	}

	tokens, err := newTokenService(cfg, log)
	if err != nil {
		return err
	}
	provider, err := newIdentityProvider(rootCtx, cfg, log)
	if err != nil {
		return err
	}

	notices := notify.NewCenter()
	allowList := session.NewAllowList(cfg.AdminAllowList())
	manager := session.NewManager(provider, tokens, sessions, allowList, notices, log)
	unsubscribe := manager.Subscribe(func(event session.Event) {
		log.Info("admin_session_changed",
			slog.String("state", string(event.State)),
			slog.String("email", event.Email),
		)
	})
	defer unsubscribe()

	requireAdmin := middleware.RequireAdmin(manager)
	log.Info("admin_allow_list_loaded", slog.Int("entries", allowList.Len()))

	// ── Domain wiring ─────────────────────────────────────────────────────
	uploader := media.NewUploader(media.Config{
		CloudName:    cfg.CloudinaryCloudName,
		UploadPreset: cfg.CloudinaryUploadPreset,
		BaseURL:      cfg.CloudinaryBaseURL,
	}, nil, log)
	if !uploader.Configured() {
		log.Warn("image_cdn_not_configured")
	}

	svc := newServices(store, uploader, log)

	assembler := resume.NewAssembler(resume.AssemblerConfig{
		DataPath:   cfg.ResumeDataPath,
		PhotoURL:   cfg.ResumePhotoURL,
		Projects:   svc.projects,
		Experience: svc.experience,
		Skills:     svc.skills,
		Profile:    svc.site,
	}, log)
	renderer := resume.NewRenderer(nil, log)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Projects:   project.NewHandler(svc.projects, requireAdmin),
		Skills:     skill.NewHandler(svc.skills, requireAdmin),
		Experience: experience.NewHandler(svc.experience, requireAdmin),
		Blog:       blog.NewHandler(svc.blog, requireAdmin),
		Messages:   message.NewHandler(svc.messages, requireAdmin, middleware.ContactRateLimit(rootCtx), notices),
		SiteConfig: siteconfig.NewHandler(svc.site, requireAdmin),
		Media:      media.NewHandler(uploader, requireAdmin),
		Session:    session.NewHandler(manager, requireAdmin, !cfg.IsDevelopment()),
		Resume:     resume.NewHandler(renderer, assembler.Load, notices),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── Graceful shutdown ─────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
		return err
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		return err
	}

	log.Info("server_stopped_cleanly")
	return nil
}
