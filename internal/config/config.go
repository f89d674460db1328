package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Goals     GoalsConfig     `yaml:"goals"`
	Synthesis SynthesisConfig `yaml:"synthesis"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// GoalsConfig points at an optional archetype file that extends or replaces
// the built-in archetypes by id.
type GoalsConfig struct {
	File string `yaml:"file"`
}

type SynthesisConfig struct {
	PriorityRatio     float64 `yaml:"priority_ratio"`
	WarmupMinutes     int     `yaml:"warmup_minutes"`
	MaxSessionMinutes int     `yaml:"max_session_minutes"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns a Config with every key set. The database lives under the
// user's home directory, or the working directory when none is known.
func Default() *Config {
	dir := ".mesoforge"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".mesoforge")
	}
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "mesoforge.db")},
		Synthesis: SynthesisConfig{
			PriorityRatio:     0.80,
			WarmupMinutes:     5,
			MaxSessionMinutes: 60,
		},
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load starts from Default, overlays the YAML file at path, then applies
// environment variable overrides and validates. An empty path skips the file.
// Env vars use the prefix MESOFORGE_:
//
//	MESOFORGE_DB, MESOFORGE_GOALS_FILE,
//	MESOFORGE_PRIORITY_RATIO, MESOFORGE_WARMUP_MINUTES, MESOFORGE_MAX_SESSION_MINUTES,
//	MESOFORGE_SERVER_HOST, MESOFORGE_SERVER_PORT,
//	MESOFORGE_LOG_LEVEL, MESOFORGE_LOG_FORMAT
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MESOFORGE_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("MESOFORGE_GOALS_FILE"); v != "" {
		cfg.Goals.File = v
	}
	if v := os.Getenv("MESOFORGE_PRIORITY_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Synthesis.PriorityRatio = f
		}
	}
	if v := os.Getenv("MESOFORGE_WARMUP_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Synthesis.WarmupMinutes = n
		}
	}
	if v := os.Getenv("MESOFORGE_MAX_SESSION_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Synthesis.MaxSessionMinutes = n
		}
	}
	if v := os.Getenv("MESOFORGE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("MESOFORGE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MESOFORGE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MESOFORGE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate reports the first invalid key.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if c.Synthesis.PriorityRatio <= 0 || c.Synthesis.PriorityRatio > 1 {
		return fmt.Errorf("synthesis.priority_ratio %.2f must be in (0, 1]", c.Synthesis.PriorityRatio)
	}
	if c.Synthesis.WarmupMinutes < 0 {
		return errors.New("synthesis.warmup_minutes cannot be negative")
	}
	if c.Synthesis.MaxSessionMinutes <= c.Synthesis.WarmupMinutes {
		return fmt.Errorf("synthesis.max_session_minutes (%d) must exceed warmup_minutes (%d)",
			c.Synthesis.MaxSessionMinutes, c.Synthesis.WarmupMinutes)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: invalid value %q (expected text or json)", c.Log.Format)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log.level: invalid value %q", s)
	}
	return level, nil
}

// NewLogger builds the slog logger described by the log section.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
