package assets

import "github.com/omahapp/mushaf/internal/apperr"

var (
	ErrUnknownVariant = &apperr.Error{
		Message: "no download source for quality %q and font %q",
	}

	ErrDownloadInProgress = &apperr.Error{
		Message: "a page download is already in progress",
	}

	ErrDownloadFailed = &apperr.Error{
		Message: "downloading the page archive failed",
	}

	ErrExtractFailed = &apperr.Error{
		Message: "extracting the page archive failed",
	}

	ErrUnsafeEntry = &apperr.Error{
		Message: "archive entry %q escapes the pages directory",
	}

	ErrDuplicatePage = &apperr.Error{
		Message: "archive holds more than one page named %q",
	}

	errUnexpectedStatus = &apperr.Error{
		Message: "server responded with %s",
	}
)
