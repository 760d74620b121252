package config

import "github.com/omahapp/mushaf/internal/apperr"

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

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errInvalidQuality = &apperr.Error{
		Message: "unknown quality %q (use low, mid or high)",
	}

	errNoSources = &apperr.Error{
		Message: "at least one download source must be configured",
	}

	errInvalidSource = &apperr.Error{
		Message: "download source %d: %s",
	}

	errUnknownQuality = &apperr.Error{
		Message: "no download source for the default quality %q and font %q",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (use debug, info, warn or error)",
	}

	errNegativeLogSetting = &apperr.Error{
		Message: "log %s cannot be negative",
	}
)
