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
	path := writeConfig(t, "server:\n  mode: release\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/sitepulse.db", cfg.Database.SQLite.Path)
	assert.Equal(t, 10*time.Minute, cfg.Cache.SiteTTL)
	assert.Equal(t, int64(10000000), cfg.Filter.Capacity)
	assert.Equal(t, 0.01, cfg.Filter.ErrorRate)
	assert.Equal(t, "site_visits", cfg.RocketMQ.Topic)
	assert.Empty(t, cfg.RocketMQ.NameServer)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
}

func TestLoad_ExpandEnv(t *testing.T) {
	t.Setenv("SITEPULSE_MYSQL_DSN", "user:pass@tcp(db:3306)/sitepulse")
	path := writeConfig(t, `
database:
  driver: mysql
  mysql:
    dsn: ${SITEPULSE_MYSQL_DSN}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "user:pass@tcp(db:3306)/sitepulse", cfg.Database.MySQL.DSN)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "mysql without dsn", body: "database:\n  driver: mysql\n"},
		{name: "unknown driver", body: "database:\n  driver: oracle\n"},
		{name: "unknown timezone", body: "stats:\n  timezone: Not/AZone\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoad_Timezone(t *testing.T) {
	cfg, err := Load(writeConfig(t, "stats:\n  timezone: UTC\n"))
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Stats.Location().String())
}

func TestStatsConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, StatsConfig{}.Location())
	assert.Equal(t, time.Local, StatsConfig{Timezone: "local"}.Location())
	assert.Equal(t, time.Local, StatsConfig{Timezone: "Not/AZone"}.Location())
	assert.Equal(t, "UTC", StatsConfig{Timezone: "UTC"}.Location().String())
}
