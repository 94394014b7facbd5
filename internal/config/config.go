package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"calendar-gui/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth    = 1200
	DefaultWindowHeight   = 800
	DefaultWindowTitle    = "Calendar GUI Application"
	DefaultLogLevel       = "info"
	DefaultExportFileName = "calendar.ics"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "CALENDAR_CONFIG"
	EnvLogLevel   = "CALENDAR_LOG_LEVEL"
	EnvJSONLogs   = "CALENDAR_JSON_LOGS"
	EnvDebug      = "CALENDAR_DEBUG"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// Config is the top-level application configuration. The zero-config
// defaults reproduce the stock 1200x800 window.
type Config struct {
	Window         WindowConfig `yaml:"window"`
	LogLevel       string       `yaml:"log_level"`
	JSONLogs       bool         `yaml:"json_logs"`
	ExportFileName string       `yaml:"export_file_name"`
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		LogLevel:       DefaultLogLevel,
		ExportFileName: DefaultExportFileName,
	}
}

// Normalize fills zero values with defaults so partially-filled files still work.
func (c *Config) Normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultWindowTitle
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ExportFileName == "" {
		c.ExportFileName = DefaultExportFileName
	}
}

// Validate rejects values Normalize cannot repair
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level; Validate must have succeeded.
func (c *Config) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

// Load builds the configuration from defaults, an optional YAML file named by
// CALENDAR_CONFIG, a .env file in the working directory and the environment,
// in that order.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if path := os.Getenv(EnvConfigPath); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file and normalizes it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// applyEnv overlays environment variables looked up through lookup
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvJSONLogs); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvJSONLogs, err)
		}
		c.JSONLogs = enabled
	}
	if v, ok := lookup(EnvDebug); ok && v == "1" {
		c.LogLevel = "debug"
	}
	return nil
}

// NewLogger builds the zerolog-backed logger the config asks for.
func (c *Config) NewLogger() logger.Logger {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.Level())
	}
	return logger.NewConsoleLogger(c.Level())
}
