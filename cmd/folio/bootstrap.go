// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/taibuivan/folio/internal/core/blog"
	"github.com/taibuivan/folio/internal/core/experience"
	"github.com/taibuivan/folio/internal/core/message"
	"github.com/taibuivan/folio/internal/core/project"
	"github.com/taibuivan/folio/internal/core/siteconfig"
	"github.com/taibuivan/folio/internal/core/skill"
	"github.com/taibuivan/folio/internal/identity"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/internal/platform/migration"
	pgstore "github.com/taibuivan/folio/internal/platform/postgres"
	"github.com/taibuivan/folio/internal/platform/sec"
)

// # Logging

// newLogger builds the JSON logger every command uses. Debug level follows DEBUG.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// loadConfig reads configuration and returns a logger configured from it.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, newLogger(nil), err
	}
	log := newLogger(cfg)
	log.Debug("debug_logging_enabled")
	return cfg, log, nil
}

// # Document Store

// openStore connects the configured backend. The postgres backend is migrated
// to the latest schema first.
func openStore(context context.Context, cfg *config.Config, log *slog.Logger) (docstore.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, err
		}
		pool, err := pgstore.NewPool(context, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return docstore.NewPostgresStore(pool), nil

	case config.DriverMongo:
		store, err := docstore.ConnectMongo(context, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Info("mongo_store_connected", slog.String("database", cfg.MongoDatabase))
		return store, nil

	case config.DriverMemory:
		log.Warn("memory_store_selected", slog.String("note", "content is lost on restart"))
		return docstore.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// services holds the content services shared by serve, resume and import-posts.
type services struct {
	projects   *project.Service
	skills     *skill.Service
	experience *experience.Service
	blog       *blog.Service
	messages   *message.Service
	site       *siteconfig.Service
}

func newServices(store docstore.Store, images siteconfig.ImageRemover, log *slog.Logger) services {
	return services{
		projects:   project.NewService(project.NewRepository(store, log, nil), log),
		skills:     skill.NewService(skill.NewRepository(store, log, nil), log),
		experience: experience.NewService(experience.NewRepository(store, log, nil), log),
		blog:       blog.NewService(blog.NewRepository(store, log, nil), log),
		messages:   message.NewService(message.NewRepository(store, log, nil), log),
		site:       siteconfig.NewService(siteconfig.NewRepositories(store, log, nil), images, log),
	}
}

// # Sessions & Identity

// newTokenService loads the RS256 key pair. Development without keys gets a
// throwaway pair, so sessions do not survive a restart.
func newTokenService(cfg *config.Config, log *slog.Logger) (*sec.TokenService, error) {
	if cfg.JWTPrivKeyPath != "" {
		return sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	}
	if !cfg.IsDevelopment() {
		return nil, errors.New("JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH are required outside development")
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	log.Warn("session_keys_ephemeral")
	return sec.NewTokenServiceFromKeys(key, &key.PublicKey, constants.AuthIssuer), nil
}

// newIdentityProvider prefers the hosted provider. Without one, the password
// provider signs in the first allow-listed email, or refuses every attempt
// when no password hash is configured.
func newIdentityProvider(context context.Context, cfg *config.Config, log *slog.Logger) (identity.Provider, error) {
	if cfg.IdPJWKSURL != "" {
		return identity.NewJWKSProvider(context, identity.JWKSConfig{
			JWKSURL:  cfg.IdPJWKSURL,
			Issuer:   cfg.IdPIssuer,
			Audience: cfg.IdPAudience,
		}, log)
	}

	admins := cfg.AdminAllowList()
	if len(admins) == 0 {
		return nil, errors.New("no admin emails configured")
	}
	if cfg.DevAdminPasswordHash == "" {
		log.Warn("sign_in_disabled", slog.String("reason", "neither IDP_JWKS_URL nor DEV_ADMIN_PASSWORD_HASH is set"))
	}
	return identity.NewPasswordProvider(admins[0], cfg.DevAdminPasswordHash, log), nil
}
