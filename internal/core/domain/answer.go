package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies an answer failure. The HTTP contract flattens every
// kind to the same status 500 payload; the kind stays on the error so logs
// and tests can still discriminate.
type ErrorKind string

const (
	// KindConfiguration means the API credential is missing or a placeholder.
	KindConfiguration ErrorKind = "configuration"

	// KindModelUnavailable means the upstream returned 404 for the model.
	KindModelUnavailable ErrorKind = "model_unavailable"

	// KindRateLimited means the upstream returned 429.
	KindRateLimited ErrorKind = "rate_limited"

	// KindUpstream means the upstream returned some other non-success status.
	KindUpstream ErrorKind = "upstream"

	// KindMalformedResponse means the upstream succeeded but the response
	// carried no text.
	KindMalformedResponse ErrorKind = "malformed_response"

	// KindInternal means an unexpected failure anywhere in the flow.
	KindInternal ErrorKind = "internal"
)

// AnswerError is a tagged failure from the answer pipeline.
type AnswerError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the user-facing error text returned on the wire.
	Message string

	// Status is the HTTP status returned to the caller. Always 500:
	// upstream failure statuses are deliberately not propagated.
	Status int
}

// Error implements the error interface.
func (e *AnswerError) Error() string {
	return e.Message
}

// NewAnswerError creates an AnswerError of the given kind.
func NewAnswerError(kind ErrorKind, message string) *AnswerError {
	return &AnswerError{
		Kind:    kind,
		Message: message,
		Status:  http.StatusInternalServerError,
	}
}

// AsAnswerError unwraps err as an *AnswerError if possible.
func AsAnswerError(err error) (*AnswerError, bool) {
	var ae *AnswerError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
