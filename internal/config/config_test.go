package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "salon"
password = "secret"
dbname = "availability"

[catalog_service]
url = "http://catalog:8080"

[slots]
timezone = "Europe/Moscow"
horizon_days = 7
worker_enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=salon password=secret dbname=availability sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "Europe/Moscow", cfg.Slots.Location().String())
	assert.Equal(t, 7, cfg.Slots.HorizonDays)
	assert.Equal(t, 3600, cfg.Slots.HorizonInterval)
	assert.True(t, cfg.Slots.WorkerEnabled)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "broken toml",
			body:    `[server`,
			wantErr: ErrReadConfig,
		},
		{
			name: "missing catalog url",
			body: `
[database]
dbname = "availability"
`,
			wantErr: ErrInvalidConfig,
		},
		{
			name: "unknown timezone",
			body: `
[database]
dbname = "availability"
[catalog_service]
url = "http://catalog"
[slots]
timezone = "Mars/Olympus"
`,
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestSlotsLocation_DefaultsToUTC(t *testing.T) {
	var s SlotsConfig
	assert.Equal(t, "UTC", s.Location().String())
}
