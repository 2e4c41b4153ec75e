package model

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// NotifyConfig holds settings for desktop reminder notifications.
type NotifyConfig struct {
	// Enabled controls whether reminders are scheduled at all.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Command overrides the platform notification command
	// (e.g., "notify-send"). Empty means auto-detect.
	Command string `mapstructure:"command" yaml:"command"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// TickIntervalSec is how often the countdown views re-sample the
	// clock, in seconds.
	TickIntervalSec int `mapstructure:"tick_interval_sec" yaml:"tick_interval_sec"`
}

// TickInterval returns the configured tick cadence as a duration,
// never shorter than one second.
func (d DisplayConfig) TickInterval() time.Duration {
	if d.TickIntervalSec <= 0 {
		return time.Second
	}
	return time.Duration(d.TickIntervalSec) * time.Second
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DBPath is where the event database lives. Empty means the
	// default location next to the config file.
	DBPath  string        `mapstructure:"db_path" yaml:"db_path"`
	Notify  NotifyConfig  `mapstructure:"notify" yaml:"notify"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/countdown/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "countdown", "config.yaml")
}

// DefaultDBPath returns the default path for the event database,
// located at ~/.config/countdown/events.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "events.db")
	}
	return filepath.Join(home, ".config", "countdown", "events.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Notify: NotifyConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			TickIntervalSec: 1,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("notify.enabled", true)
	v.SetDefault("display.tick_interval_sec", 1)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.TickIntervalSec <= 0 {
		cfg.Display.TickIntervalSec = 1
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("db_path", cfg.DBPath)
	v.Set("notify", cfg.Notify)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
