package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
database:
  path: /tmp/mf/test.db
goals:
  file: /tmp/mf/goals.yaml
synthesis:
  priority_ratio: 0.75
  warmup_minutes: 8
  max_session_minutes: 70
server:
  host: "0.0.0.0"
  port: 9090
log:
  level: debug
  format: json
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.InDelta(t, 0.80, cfg.Synthesis.PriorityRatio, 1e-9)
	assert.Equal(t, 5, cfg.Synthesis.WarmupMinutes)
	assert.Equal(t, 60, cfg.Synthesis.MaxSessionMinutes)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mesoforge.db", filepath.Base(cfg.Database.Path))
	assert.Empty(t, cfg.Goals.File)
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mf/test.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/mf/goals.yaml", cfg.Goals.File)
	assert.InDelta(t, 0.75, cfg.Synthesis.PriorityRatio, 1e-9)
	assert.Equal(t, 8, cfg.Synthesis.WarmupMinutes)
	assert.Equal(t, 70, cfg.Synthesis.MaxSessionMinutes)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "server:\n  port: 7000\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 60, cfg.Synthesis.MaxSessionMinutes)
}

func TestLoad_EnvOverridesWin(t *testing.T) {
	t.Setenv("MESOFORGE_DB", "/env/mf.db")
	t.Setenv("MESOFORGE_PRIORITY_RATIO", "0.9")
	t.Setenv("MESOFORGE_SERVER_PORT", "9191")
	t.Setenv("MESOFORGE_LOG_FORMAT", "text")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "/env/mf.db", cfg.Database.Path)
	assert.InDelta(t, 0.9, cfg.Synthesis.PriorityRatio, 1e-9)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_UnparsableEnvIgnored(t *testing.T) {
	t.Setenv("MESOFORGE_SERVER_PORT", "not-a-port")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "server: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ratio zero", func(c *Config) { c.Synthesis.PriorityRatio = 0 }, "priority_ratio"},
		{"ratio above one", func(c *Config) { c.Synthesis.PriorityRatio = 1.2 }, "priority_ratio"},
		{"negative warmup", func(c *Config) { c.Synthesis.WarmupMinutes = -1 }, "warmup_minutes"},
		{"cap below warmup", func(c *Config) { c.Synthesis.MaxSessionMinutes = 5 }, "max_session_minutes"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"no db", func(c *Config) { c.Database.Path = "" }, "database.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	log.Info("dropped")
	log.Warn("kept", "k", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
}
