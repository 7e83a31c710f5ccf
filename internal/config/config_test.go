package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-portal/internal/config"
)

const strongSecret = "k9PmXv2Qw7ZtRb4Nc8JdYf3LhGs6Ae1U"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "local-dev-password")
	t.Setenv("JWT_SECRET", strongSecret)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_MAX_CONNS", "LOGO_BUCKET"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.False(t, cfg.Logos.Enabled())
}

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "local-dev-password")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadMissingDBPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", strongSecret)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoadShortJWTSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "local-dev-password")
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadLowEntropyJWTSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "local-dev-password")
	t.Setenv("JWT_SECRET", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy")
}

func TestDSN(t *testing.T) {
	db := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Database: "portal",
		User:     "portal_app",
		Password: "pw",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://portal_app:pw@db.internal:5433/portal?sslmode=require", db.DSN())
}

func TestLogosEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOGO_BUCKET", "school-logos")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Logos.Enabled())
	assert.Equal(t, "eu-west-1", cfg.Logos.Region)
}
