package config

import (
	"github.com/ayoisaiah/mmo/internal/logging"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Ladder != nil {
		if err := c.Ladder.Validate(); err != nil {
			return err
		}
	}

	if c.CLI.Level != 0 && c.Ladder != nil {
		if _, ok := c.Ladder.Lookup(c.CLI.Level); !ok {
			return errInvalidLevel.Fmt(c.CLI.Level, len(c.Ladder))
		}
	}

	return nil
}
