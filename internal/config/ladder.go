package config

import (
	"errors"
	"os"

	"github.com/ayoisaiah/mmo/level"
)

// WithLadder returns an Option that loads the level ladder. A file named by
// levels.file must exist; otherwise defaultPath is used when present and the
// built-in ladder when it is not.
func WithLadder(defaultPath string) Option {
	return func(c *Config) error {
		path := c.Levels.File
		if path == "" {
			path = defaultPath

			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				c.Ladder = level.Default()
				return nil
			}
		}

		ladder, err := level.Load(path)
		if err != nil {
			return errLoadLadder.Fmt(path).Wrap(err)
		}

		c.Ladder = ladder

		return nil
	}
}
