// Package config provides configuration management for sprint.
//
// Every setting has a default, so sprint runs without any config file. An
// optional TOML file at ~/.sprint/config.toml overrides those defaults, and
// SPRINT_* environment variables (SPRINT_HISTORY_LOG_FILE, SPRINT_LOG_LEVEL)
// override the file. The file is only ever read, never created or written.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/sprint-cli/internal/gradient"
)

// Config holds all configuration for the sprint application.
type Config struct {
	History       HistoryConfig      `mapstructure:"history"`
	Timer         TimerConfig        `mapstructure:"timer"`
	Presets       []Preset           `mapstructure:"presets"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
	Log           LogConfig          `mapstructure:"log"`
}

// HistoryConfig controls the session log file.
type HistoryConfig struct {
	LogFile         string `mapstructure:"log_file"`
	Limit           int    `mapstructure:"limit"`
	TimestampFormat string `mapstructure:"timestamp_format"`
}

// TimerConfig controls how the countdown is rendered.
type TimerConfig struct {
	BarWidth        int `mapstructure:"bar_width"`
	MotivationEvery int `mapstructure:"motivation_every"`
	SprintThreshold int `mapstructure:"sprint_threshold"`
}

// Preset is a named session duration offered at startup.
type Preset struct {
	Name    string  `mapstructure:"name"`
	Minutes float64 `mapstructure:"minutes"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// ThemeConfig holds the palette. All values are #rrggbb.
type ThemeConfig struct {
	ColorAccent          string `mapstructure:"color_accent"`
	ColorDim             string `mapstructure:"color_dim"`
	ColorDetails         string `mapstructure:"color_details"`
	ColorSprint          string `mapstructure:"color_sprint"`
	ColorError           string `mapstructure:"color_error"`
	ColorWarning         string `mapstructure:"color_warning"`
	BannerGradientStart  string `mapstructure:"banner_gradient_start"`
	BannerGradientEnd    string `mapstructure:"banner_gradient_end"`
	ClosingGradientStart string `mapstructure:"closing_gradient_start"`
	ClosingGradientEnd   string `mapstructure:"closing_gradient_end"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultThemeConfig returns the default palette.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorAccent:          "#7C6FE0",
		ColorDim:             "#6B7280",
		ColorDetails:         "#4ECDC4",
		ColorSprint:          "#FF6B6B",
		ColorError:           "#EF4444",
		ColorWarning:         "#F59E0B",
		BannerGradientStart:  "#FF6B6B",
		BannerGradientEnd:    "#FFD93D",
		ClosingGradientStart: "#7C6FE0",
		ClosingGradientEnd:   "#4ECDC4",
	}
}

// DefaultPresets returns the built-in duration choices.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Test", Minutes: 0.1},
		{Name: "Focus", Minutes: 25},
		{Name: "Deep", Minutes: 50},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			LogFile:         "sprint.log",
			Limit:           10,
			TimestampFormat: "1/2/2006, 3:04:05 PM",
		},
		Timer: TimerConfig{
			BarWidth:        30,
			MotivationEvery: 30,
			SprintThreshold: 10,
		},
		Presets: DefaultPresets(),
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Theme: DefaultThemeConfig(),
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads ~/.sprint/config.toml when present and applies defaults for
// everything it leaves out.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom is Load with an explicit file path. A missing file is not an error.
func LoadFrom(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.SetEnvPrefix("sprint")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail deep inside the timer.
func (c *Config) Validate() error {
	if c.History.LogFile == "" {
		return errors.New("history.log_file must not be empty")
	}
	if c.History.Limit <= 0 {
		return fmt.Errorf("history.limit must be positive, got %d", c.History.Limit)
	}
	if c.Timer.BarWidth <= 0 {
		return fmt.Errorf("timer.bar_width must be positive, got %d", c.Timer.BarWidth)
	}
	if c.Timer.MotivationEvery <= 0 {
		return fmt.Errorf("timer.motivation_every must be positive, got %d", c.Timer.MotivationEvery)
	}
	if len(c.Presets) == 0 {
		return errors.New("at least one duration preset is required")
	}
	for _, p := range c.Presets {
		if p.Minutes <= 0 {
			return fmt.Errorf("preset %q must have a positive duration", p.Name)
		}
	}
	for name, hex := range c.Theme.colors() {
		if _, err := gradient.Hex(hex); err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}
	return nil
}

func (t ThemeConfig) colors() map[string]string {
	return map[string]string{
		"color_accent":           t.ColorAccent,
		"color_dim":              t.ColorDim,
		"color_details":          t.ColorDetails,
		"color_sprint":           t.ColorSprint,
		"color_error":            t.ColorError,
		"color_warning":          t.ColorWarning,
		"banner_gradient_start":  t.BannerGradientStart,
		"banner_gradient_end":    t.BannerGradientEnd,
		"closing_gradient_start": t.ClosingGradientStart,
		"closing_gradient_end":   t.ClosingGradientEnd,
	}
}

// GetConfigPath returns the path to the optional config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sprint", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("history.log_file", d.History.LogFile)
	v.SetDefault("history.limit", d.History.Limit)
	v.SetDefault("history.timestamp_format", d.History.TimestampFormat)
	v.SetDefault("timer.bar_width", d.Timer.BarWidth)
	v.SetDefault("timer.motivation_every", d.Timer.MotivationEvery)
	v.SetDefault("timer.sprint_threshold", d.Timer.SprintThreshold)
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.sound", d.Notifications.Sound)
	v.SetDefault("log.level", d.Log.Level)

	presets := make([]map[string]any, 0, len(d.Presets))
	for _, p := range d.Presets {
		presets = append(presets, map[string]any{"name": p.Name, "minutes": p.Minutes})
	}
	v.SetDefault("presets", presets)

	// Theme defaults
	for key, value := range d.Theme.colors() {
		v.SetDefault("theme."+key, value)
	}
}
