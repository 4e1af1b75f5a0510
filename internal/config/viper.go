package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyLevelsFile           = "levels.file"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keySessionCmd           = "settings.cmd"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there if it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the defaults. Values already present on c (from a
// first-run prompt) take precedence.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyLevelsFile, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, "info")

	if c.prompted {
		v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
		v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
