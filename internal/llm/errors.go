package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no credential is configured for the
	// generation endpoint. Raised before any network attempt.
	ErrMissingAPIKey = errors.New("generation API key is not configured")

	// ErrServiceUnavailable indicates the generation endpoint is unreachable.
	ErrServiceUnavailable = errors.New("generation service unreachable")

	// ErrTimeout indicates the request exceeded the configured deadline.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the response body could not be parsed into
	// the declared structured contract.
	ErrInvalidOutput = errors.New("invalid generation output format")
)
