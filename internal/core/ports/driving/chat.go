// Package driving provides interfaces for application entry points (primary/inbound ports).
package driving

import "context"

// ChatService answers user questions from the regulations corpus.
type ChatService interface {
	// Answer builds a prompt from the static corpus and the question,
	// issues exactly one call to the generation service, and returns the
	// model's text. Every failure comes back as a *domain.AnswerError so
	// callers can read the kind while the wire contract stays a flat
	// status-500 payload.
	Answer(ctx context.Context, question string) (string, error)
}
