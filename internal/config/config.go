// Package config provides application-level configuration for FocusNest.
// The engine's own timer settings live in the persisted state snapshot; this
// file only covers how the application runs around it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Timer   TimerConfig   `mapstructure:"timer"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// TimerConfig holds timer driver settings.
type TimerConfig struct {
	// AutoStartDelay is the pause between an auto-chained mode switch and
	// the automatic start. Zero or negative values fall back to the default.
	AutoStartDelay Duration `mapstructure:"auto_start_delay"`
}

// ThemeConfig holds display colors for the timer view.
type ThemeConfig struct {
	ColorPomodoro string `mapstructure:"color_pomodoro"`
	ColorBreak    string `mapstructure:"color_break"`
	ColorPaused   string `mapstructure:"color_paused"`
	ColorHelp     string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorPomodoro: "#E06C75",
		ColorBreak:    "#4ECDC4",
		ColorPaused:   "#6B7280",
		ColorHelp:     "#95A5A6",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{DataDir: "~/.focusnest"},
		Timer:   TimerConfig{AutoStartDelay: Duration(time.Second)},
		Theme:   DefaultThemeConfig(),
	}
}

// Load reads the configuration from ~/.focusnest/config.toml, creating it
// with defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := saveTo(v, configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.DataDir == "~/.focusnest" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".focusnest")
	}

	return &cfg, nil
}

// Save writes the configuration to the default config path.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	v := viper.New()
	v.SetConfigType("toml")
	return saveTo(v, configPath, cfg)
}

func saveTo(v *viper.Viper, configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v.SetConfigFile(configPath)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("timer.auto_start_delay", cfg.Timer.AutoStartDelay.String())
	v.Set("theme.color_pomodoro", cfg.Theme.ColorPomodoro)
	v.Set("theme.color_break", cfg.Theme.ColorBreak)
	v.Set("theme.color_paused", cfg.Theme.ColorPaused)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".focusnest", "config.toml"), nil
}

// GetDBPath returns the path to the blob-store database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "focusnest.db")
}

// AutoStartDelay returns the configured auto-start delay, falling back to
// one second for zero or negative values.
func (c *Config) AutoStartDelay() time.Duration {
	d := time.Duration(c.Timer.AutoStartDelay)
	if d <= 0 {
		return time.Second
	}
	return d
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.data_dir", "~/.focusnest")
	v.SetDefault("timer.auto_start_delay", "1s")

	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_pomodoro", defaults.ColorPomodoro)
	v.SetDefault("theme.color_break", defaults.ColorBreak)
	v.SetDefault("theme.color_paused", defaults.ColorPaused)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
}
