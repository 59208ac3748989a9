// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
)

// clearEnv unsets every key the tests depend on so the host environment
// cannot leak in. t.Setenv registers the restore.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE_DRIVER", "DATABASE_URL", "MONGO_URI", "JWT_PRIVATE_KEY_PATH", "JWT_PUBLIC_KEY_PATH",
		"ADMIN_EMAILS", "CORS_ORIGINS", "SERVER_PORT", "ENVIRONMENT", "CLOUDINARY_BASE_URL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

/*
TestParse_Defaults verifies defaults with the memory driver.
*/
func TestParse_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.cloudinary.com", cfg.CloudinaryBaseURL)
	assert.Equal(t, constants.AdminAllowList, cfg.AdminAllowList())
	assert.Empty(t, cfg.AllowedOrigins())
}

/*
TestParse_Lists verifies comma-separated lists are split and trimmed.
*/
func TestParse_Lists(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ADMIN_EMAILS", "me@folio.dev, other@folio.dev ,")
	t.Setenv("CORS_ORIGINS", "https://folio.dev,https://www.folio.dev")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, []string{"me@folio.dev", "other@folio.dev"}, cfg.AdminAllowList())
	assert.Equal(t, []string{"https://folio.dev", "https://www.folio.dev"}, cfg.AllowedOrigins())
}

/*
TestParse_DriverValidation verifies driver-specific requirements.
*/
func TestParse_DriverValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"postgres_without_url", map[string]string{"STORE_DRIVER": "postgres"}, "DATABASE_URL"},
		{"mongo_without_uri", map[string]string{"STORE_DRIVER": "mongo"}, "MONGO_URI"},
		{"unknown_driver", map[string]string{"STORE_DRIVER": "sqlite"}, "unknown STORE_DRIVER"},
		{"half_key_pair", map[string]string{"STORE_DRIVER": "memory", "JWT_PRIVATE_KEY_PATH": "/k"}, "must be set together"},
		{"postgres_ok", map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/folio"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Parse()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
