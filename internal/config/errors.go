package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Config.ValidateOutput()
// so callers can use errors.Is() while still printing a readable message.
var (
	// ErrEmptyBaseURL is returned when no series API URL is configured.
	ErrEmptyBaseURL = errors.New("empty base URL: set --url or series.baseURL")

	// ErrEmptyGenre is returned when the genre is empty or only whitespace.
	ErrEmptyGenre = errors.New("empty genre: provide a genre argument or series.genre")

	// ErrInvalidMaxPages is returned when max pages is outside 1..20.
	// The API client never requests more than 20 pages.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be between 1 and 20")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidTop is returned when the top-N count is negative.
	ErrInvalidTop = errors.New("invalid top count: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
