// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A `.env` file in the
working directory is loaded first when present (joho/godotenv); real environment
variables always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Settings only some commands need (CDN, identity provider, résumé data) are
optional here and checked by the component that uses them.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio server and CLI.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Document store backend
	StoreDriver   string `env:"STORE_DRIVER"   envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"folio"`

	// Admin sessions (Redis + RS256 session tokens)
	RedisURL       string `env:"REDIS_URL"`
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`

	// Identity provider
	IdPJWKSURL           string   `env:"IDP_JWKS_URL"`
	IdPIssuer            string   `env:"IDP_ISSUER"`
	IdPAudience          string   `env:"IDP_AUDIENCE"`
	DevAdminPasswordHash string   `env:"DEV_ADMIN_PASSWORD_HASH"`
	AdminEmails          []string `env:"ADMIN_EMAILS" envSeparator:","`

	// Image CDN (unsigned uploads)
	CloudinaryCloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryUploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`
	CloudinaryBaseURL      string `env:"CLOUDINARY_BASE_URL" envDefault:"https://api.cloudinary.com"`

	// Résumé
	ResumeDataPath string `env:"RESUME_DATA_PATH" envDefault:"./data/resume.yaml"`
	ResumePhotoURL string `env:"RESUME_PHOTO_URL"`

	// Cross-Origin Resource Sharing
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load reads `.env` when present, then parses environment variables into a [Config].
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env: %w", err)
	}

	return Parse()
}

// Parse maps the current environment onto a [Config] without touching `.env`.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("config: MONGO_URI is required when STORE_DRIVER=mongo")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q (want postgres, mongo or memory)", c.StoreDriver)
	}

	if (c.JWTPrivKeyPath == "") != (c.JWTPubKeyPath == "") {
		return errors.New("config: JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH must be set together")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins is the CORS origin list.
func (c *Config) AllowedOrigins() []string {
	return trimAll(c.CORSOrigins)
}

// AdminAllowList returns ADMIN_EMAILS when set, otherwise the built-in list.
func (c *Config) AdminAllowList() []string {
	if emails := trimAll(c.AdminEmails); len(emails) > 0 {
		return emails
	}
	return constants.AdminAllowList
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
