package remote

import "errors"

var (
	// ErrUnavailable indicates the catalog API is unreachable.
	ErrUnavailable = errors.New("catalog api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("catalog api request timed out")

	// ErrBadResponse indicates a non-200 status or a body that could not be decoded.
	ErrBadResponse = errors.New("catalog api returned an unusable response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("catalog api retry attempts exhausted")
)
