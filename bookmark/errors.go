package bookmark

import "github.com/omahapp/mushaf/internal/apperr"

var (
	ErrEmptyName = &apperr.Error{
		Message: "bookmark name cannot be empty",
	}

	ErrInvalidPage = &apperr.Error{
		Message: "page %d is out of range (1-%d)",
	}

	ErrInvalidPageRange = &apperr.Error{
		Message: "invalid page range %d-%d: pages must be between 1 and %d and the start must not come after the end",
	}

	ErrInvalidJuzRange = &apperr.Error{
		Message: "invalid juz range %d-%d: juz must be between 1 and %d and the start must not come after the end",
	}

	ErrNotFound = &apperr.Error{
		Message: "bookmark %s not found",
	}
)
