package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DB_URL", "postgres://localhost/passvault")
	t.Setenv("GOOGLE_CLIENT_ID", "client-123.apps.googleusercontent.com")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 15*time.Minute, cfg.Session.CleanupInterval)
	assert.Equal(t, "postgres", cfg.Session.Store)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CorsOrigins)
	assert.Equal(t, "auto", cfg.R2.Region)
	assert.False(t, cfg.R2.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("DB_URL", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "exports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CorsOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.True(t, cfg.R2.Enabled())
	assert.Equal(t, cfg.CorsOrigins, cfg.CorsConfig().AllowedOrigins)
	assert.True(t, cfg.CorsConfig().AllowCredentials)
}

func TestLoad_ProductionRequiresSessionSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_RejectsUnknownSessionStore(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_STORE", "memcached")

	_, err := Load()
	require.Error(t, err)
}

func TestVaultKeyBytes(t *testing.T) {
	cfg := Config{}
	key, err := cfg.VaultKeyBytes()
	require.NoError(t, err)
	assert.Nil(t, key)

	cfg.VaultKey = strings.Repeat("ab", 32)
	key, err = cfg.VaultKeyBytes()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	cfg.VaultKey = "abcd"
	_, err = cfg.VaultKeyBytes()
	assert.Error(t, err)

	cfg.VaultKey = "zz"
	_, err = cfg.VaultKeyBytes()
	assert.Error(t, err)
}
