package app

import "github.com/omahapp/mushaf/internal/apperr"

var (
	errInvalidRange = &apperr.Error{
		Message: "invalid range %q: expected START-END",
	}

	errConflictingTargets = &apperr.Error{
		Message: "a bookmark can target either pages or juz, not both",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errNoLastRead = &apperr.Error{
		Message: "nothing has been read yet",
	}

	errNotDownloaded = &apperr.Error{
		Message: "the Quran pages have not been downloaded yet: run 'mushaf download'",
	}

	errNotEnoughSpace = &apperr.Error{
		Message: "not enough free disk space for the %s download (%s free)",
	}

	errUnknownPref = &apperr.Error{
		Message: "unknown preference %q (use %s)",
	}

	errInvalidPrefValue = &apperr.Error{
		Message: "preference %s expects true or false, got %q",
	}

	errInvalidMonth = &apperr.Error{
		Message: "invalid month %q: expected YYYY-MM",
	}
)
