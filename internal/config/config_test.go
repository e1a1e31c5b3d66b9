package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "medishield", cfg.MongoDB.DBName)
	assert.Equal(t, 2*time.Minute, cfg.Backup.Interval)
	assert.Empty(t, cfg.AI.GeminiKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BACKUP_INTERVAL", "5m")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("SMTP_USER", "ops@example.com")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Backup.Interval)
	assert.Equal(t, "key-123", cfg.AI.GeminiKey)
	assert.Equal(t, "ops@example.com", cfg.Mail.From)
	assert.Equal(t, "ops@example.com", cfg.Mail.To)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("testdata/does-not-exist.env")
	assert.Error(t, err)
}

func TestLoad_RejectsTinyInterval(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BACKUP_INTERVAL", "5s")

	_, err := Load("testdata/does-not-exist.env")
	assert.Error(t, err)
}

func TestLoad_RejectsBadInterval(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BACKUP_INTERVAL", "often")

	_, err := Load("testdata/does-not-exist.env")
	assert.Error(t, err)
}
