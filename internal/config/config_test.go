package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "salon"
dbname = "salon_booking"

[slots]
interval_minutes = 15

[rate_limit]
enabled = true
requests_per_minute = 60
burst = 10

[site]
root_domain = "salons.example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Slots.IntervalMinutes)
	assert.Equal(t, "salons.example.com", cfg.Site.RootDomain)
	assert.Equal(t, 5432, cfg.Database.Port, "default kept")
	assert.Equal(t, "host=db port=5432 user=salon password= dbname=salon_booking sslmode=disable", cfg.Database.DSN())
}

func TestLoad_DefaultSlotInterval(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[database]\ndbname = \"salon\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Slots.IntervalMinutes)
}

func TestLoad_RejectsOutOfRangeInterval(t *testing.T) {
	for _, content := range []string{
		"[database]\ndbname = \"salon\"\n[slots]\ninterval_minutes = 0\n",
		"[database]\ndbname = \"salon\"\n[slots]\ninterval_minutes = -15\n",
		"[database]\ndbname = \"salon\"\n[slots]\ninterval_minutes = 1441\n",
		"[database]\ndbname = \"salon\"\n[slots]\ninterval_minutes = 9223372036854775807\n",
	} {
		_, err := Load(writeConfig(t, content))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(writeConfig(t, "[database]\ndbname = \"salon\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
