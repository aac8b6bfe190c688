package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "gestor.db")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev-secret-change-in-production", cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 30, cfg.RefreshTokenDays)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.EnableEmailNotifications)
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gestor")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required in production")
}

func TestLoad_ParsesTypedValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gestor")
	t.Setenv("ENABLE_EMAIL_NOTIFICATIONS", "true")
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DB_RETRY_ATTEMPTS", "-2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.EnableEmailNotifications)
	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 0, cfg.DBRetryAttempts)
}
