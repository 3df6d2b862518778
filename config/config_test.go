package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `server:
  port: ":8080"
mysql:
  dsn: "user:pass@tcp(localhost:3306)/recipebook"
redis:
  addr: "localhost:6379"
  db: 1
session:
  cookie_name: "session"
  secret: "test-secret"
  ttl: 3600
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/recipebook", cfg.MySQL.DSN)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, "test-secret", cfg.Session.Secret)
	assert.Equal(t, int64(3600), cfg.Session.TTL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "override-dsn")
	t.Setenv("REDIS_ADDR", "override:6379")
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("SESSION_SECRET", "override-secret")
	t.Setenv("SESSION_TTL", "60")

	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "override-dsn", cfg.MySQL.DSN)
	assert.Equal(t, "override:6379", cfg.Redis.Addr)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "override-secret", cfg.Session.Secret)
	assert.Equal(t, int64(60), cfg.Session.TTL)
}

func TestLoadInvalidTTLIgnored(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-number")

	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, int64(3600), cfg.Session.TTL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
