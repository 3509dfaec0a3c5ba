package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCredentialMissing indicates the API credential is absent or still
	// the placeholder from the sample configuration.
	ErrCredentialMissing = errors.New("API key is missing or invalid")

	// ErrModelNotFound indicates the generation service returned 404 for
	// the requested model. The key or model region may be restricted.
	ErrModelNotFound = errors.New("model not found")

	// ErrRateLimited indicates the generation service returned 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrNoTextInResponse indicates a successful generation response that
	// carried no extractable text.
	ErrNoTextInResponse = errors.New("no text in response")
)

// UpstreamStatusError reports a non-success status from the generation
// service other than the specifically handled 404 and 429 cases.
type UpstreamStatusError struct {
	// StatusCode is the raw upstream HTTP status.
	StatusCode int

	// Body is the raw upstream response body.
	Body string
}

// Error implements the error interface.
func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("API returned %d: %s", e.StatusCode, e.Body)
}
