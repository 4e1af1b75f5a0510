package app

import "github.com/ayoisaiah/mmo/internal/apperr"

var (
	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errInvalidNumber = &apperr.Error{
		Message: "%q is not a whole number",
	}

	errLevelLocked = &apperr.Error{
		Message: "level %d is locked: master level %d first",
	}

	errUnknownLevel = &apperr.Error{
		Message: "level %d does not exist",
	}

	errInvalidInterval = &apperr.Error{
		Message: "the arousal check interval must be at least 1 second",
	}

	errAborted = &apperr.Error{
		Message: "operation cancelled",
	}
)
