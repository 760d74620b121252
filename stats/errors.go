package stats

import "github.com/omahapp/mushaf/internal/apperr"

var (
	ErrInvalidDate = &apperr.Error{
		Message: "invalid session date %q: expected YYYY-MM-DD",
	}

	ErrInvalidDuration = &apperr.Error{
		Message: "session duration must be at least one minute, got %d",
	}

	ErrInvalidPages = &apperr.Error{
		Message: "invalid page range %d-%d",
	}

	ErrSessionNotFound = &apperr.Error{
		Message: "session %s not found",
	}
)
