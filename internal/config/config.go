// Package config loads tablero's TOML configuration and applies
// TABLERO_* environment overrides on top of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

// Config represents the config.toml file.
type Config struct {
	// DataDir holds the database, lock file and log file.
	DataDir string `toml:"data_dir" env:"TABLERO_DATA_DIR"`
	// DBPath defaults to tablero.db inside DataDir.
	DBPath string `toml:"db_path" env:"TABLERO_DB"`
	Theme  string `toml:"theme" env:"TABLERO_THEME"`
	// View is the dashboard view shown at startup.
	View string `toml:"view" env:"TABLERO_VIEW"`

	Drag   Drag   `toml:"drag"`
	Store  Store  `toml:"store"`
	Notify Notify `toml:"notify"`
	Log    Log    `toml:"log"`
}

// Drag contains pointer drag settings.
type Drag struct {
	// Threshold is the distance in cells a press must travel to become a drag.
	Threshold int `toml:"threshold" env:"TABLERO_DRAG_THRESHOLD"`
}

// Store contains storage settings.
type Store struct {
	// Timeout bounds every write issued by a drop.
	Timeout time.Duration `toml:"timeout" env:"TABLERO_STORE_TIMEOUT"`
}

// Notify contains notice settings.
type Notify struct {
	// Desktop also sends notices through notify-send.
	Desktop  bool          `toml:"desktop" env:"TABLERO_NOTIFY_DESKTOP"`
	ToastTTL time.Duration `toml:"toast_ttl" env:"TABLERO_TOAST_TTL"`
}

// Log contains logging settings.
type Log struct {
	Level string `toml:"level" env:"TABLERO_LOG_LEVEL"`
	// Console logs to stderr in human readable form instead of the log file.
	Console bool `toml:"console" env:"TABLERO_LOG_CONSOLE"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: "nord",
		View:  "grid",
		Drag:  Drag{Threshold: 1},
		Store: Store{Timeout: 10 * time.Second},
		Notify: Notify{
			ToastTTL: 4 * time.Second,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file yields the defaults. Environment variables
// override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/tablero/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tablero", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tablero", "config.toml"), nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) finish() error {
	if c.DataDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "tablero.db")
	}
	if c.Drag.Threshold < 1 {
		c.Drag.Threshold = 1
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store.timeout must be positive, got %s", c.Store.Timeout)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func defaultDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "tablero"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "tablero"), nil
}
