package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "reports.db", cfg.Database.Path)
	assert.Equal(t, "pt-BR", cfg.Reports.Locale)
	assert.Equal(t, "BRL", cfg.Reports.Currency)
	assert.Equal(t, 10000, cfg.Reports.RecordLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  host: 0.0.0.0
  port: 9000
  shutdown_timeout: 30s
database:
  path: /var/lib/reports/pipeline.db
reports:
  store_dir: /var/lib/reports/state
  currency: USD
  record_limit: 500
log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/var/lib/reports/pipeline.db", cfg.Database.Path)
	assert.Equal(t, "/var/lib/reports/state", cfg.Reports.StoreDir)
	assert.Equal(t, "pt-BR", cfg.Reports.Locale)
	assert.Equal(t, "USD", cfg.Reports.Currency)
	assert.Equal(t, 500, cfg.Reports.RecordLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.json", `{"server": {"port": 9000}}`)
	t.Setenv("REPORTS_SERVER_PORT", "9090")
	t.Setenv("REPORTS_REPORTS_LOCALE", "en-US")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "en-US", cfg.Reports.Locale)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"port out of range", "server:\n  port: 70000\n", "Config.Server.Port (max)"},
		{"currency code", "reports:\n  currency: REAIS\n", "Config.Reports.Currency (len)"},
		{"record limit", "reports:\n  record_limit: 20000\n", "Config.Reports.RecordLimit (max)"},
		{"log level", "log_level: loud\n", "Config.LogLevel (oneof)"},
		{"empty database path", "database:\n  path: \"\"\n", "Config.Database.Path (required)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "config.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
