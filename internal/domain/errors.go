package domain

import "errors"

var (
	// ErrInvalidQuery is returned when a search query fails validation
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrRateLimited is returned when the provider responds with HTTP 429.
	// It marks an attempt as retryable for the retry policy.
	ErrRateLimited = errors.New("provider rate limit exceeded")

	// ErrProviderFailure is returned on non-rate-limit provider HTTP errors
	ErrProviderFailure = errors.New("provider request failed")

	// ErrProviderUnreachable is returned on transport-level failures.
	// Detail fetches treat it as retryable; searches do not.
	ErrProviderUnreachable = errors.New("provider unreachable")

	// ErrMalformedPayload is returned when a provider response body cannot
	// be decoded
	ErrMalformedPayload = errors.New("malformed provider payload")
)
