// Package config loads the application configuration from the config file
// and command-line flags
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/mmo/level"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Levels        LevelsConfig       `mapstructure:"levels"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
		Ladder        level.Ladder       `mapstructure:"-"`
		prompted      bool
	}

	// LevelsConfig points at a custom level ladder.
	LevelsConfig struct {
		File string `mapstructure:"file"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// SettingsConfig holds general behaviour settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		StartTime time.Time
		EndTime   time.Time
		Level     int
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// TimeLayout returns the clock layout selected by the display settings.
func (c *Config) TimeLayout() string {
	if c.Display.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}
