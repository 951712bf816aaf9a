// Package config handles the configuration directory and client settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskdeck"

	// FileName is the settings filename inside the config directory.
	FileName = "config.yaml"

	// DefaultServer is used when no server is configured.
	DefaultServer = "http://localhost:4000/api"

	// DefaultTimeout bounds each API call.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path. State files (session,
	// theme, saved query) live here alongside the settings file.
	Dir string

	// Server is the base URL of the task API.
	Server string

	// Timeout bounds each API call.
	Timeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is the process logger. Never nil after New.
	Logger *zap.Logger
}

type fileSettings struct {
	Server  string `yaml:"server"`
	Timeout string `yaml:"timeout"` // duration string, e.g. "10s"
}

// New creates a Config with the default or specified config directory and
// applies settings from config.yaml if present. A missing settings file is
// fine; a malformed one is an error the user has to fix.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:     dir,
		Server:  DefaultServer,
		Timeout: DefaultTimeout,
		Logger:  zap.NewNop(),
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	if fs.Server != "" {
		cfg.Server = fs.Server
	}
	if fs.Timeout != "" {
		timeout, err := time.ParseDuration(fs.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout in %s: %w", FileName, err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
