package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: local\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPServer.Addr)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ImagesFS, cfg.Images.Backend)
	assert.Equal(t, "@hourly", cfg.Images.SweepSchedule)
	assert.Equal(t, 24*time.Hour, cfg.Images.SweepGrace)
	assert.True(t, cfg.Images.SweepEnabled())
	assert.Equal(t, time.Duration(0), cfg.Drafts.TTL)
	assert.False(t, cfg.Profiles.StrictEnums)
	assert.False(t, cfg.Web.Disabled)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
env: dev
storage:
  driver: sqlite
  dsn: /tmp/animals.db
images:
  sweep_schedule: "off"
drafts:
  ttl: 2h
profiles:
  strict_enums: true
`)
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPServer.Addr)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/animals.db", cfg.Storage.DSN)
	assert.False(t, cfg.Images.SweepEnabled())
	assert.Equal(t, 2*time.Hour, cfg.Drafts.TTL)
	assert.True(t, cfg.Profiles.StrictEnums)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "storage:\n  driver: postgres\n"))
	assert.Error(t, err, "postgres sin dsn")

	_, err = Load(writeConfig(t, "storage:\n  driver: mongo\n  dsn: x\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "drafts:\n  backend: memcached\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
