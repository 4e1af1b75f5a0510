package config

import "github.com/ayoisaiah/mmo/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errLoadLadder = &apperr.Error{
		Message: "loading levels from %s failed",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "invalid period %q (valid: %s)",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid %s date %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidLevel = &apperr.Error{
		Message: "level %d does not exist (valid: 1-%d)",
	}
)
