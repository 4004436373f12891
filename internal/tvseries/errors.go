package tvseries

import "errors"

// Fetch errors.
// Both classes are fatal: a failed fetch returns no partial result.
var (
	// ErrTransport is returned on network failure, a non-2xx status, or a
	// response body that is not JSON.
	ErrTransport = errors.New("transport error")

	// ErrFormat is returned when a JSON response does not have the expected
	// shape: data is not a list, total_pages is not an integer, or a record
	// cannot be decoded.
	ErrFormat = errors.New("format error")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute
	// http or https URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: expected absolute http(s) URL")
)
