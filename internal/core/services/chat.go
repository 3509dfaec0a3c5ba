package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/core/ports/driven"
	"github.com/bourse-labs/regchat/internal/core/ports/driving"
	"github.com/bourse-labs/regchat/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// placeholderMarker identifies a credential that was never replaced after
// copying the sample environment file.
const placeholderMarker = "YOUR_GEMINI"

// Fixed user-facing error messages. The wire contract returns these with
// status 500 regardless of the underlying kind.
const (
	msgConfiguration    = "Configuration Error: API Key is missing or invalid."
	msgModelUnavailable = "Model Not Found (404). The API Key or Model region might be restricted."
	msgRateLimited      = "Rate Limited (429). The system is busy."
	msgNoText           = "No text in response"
	msgInternalFallback = "Failed to communicate with AI service."
)

// ChatService answers questions by wrapping the static corpus and the
// question into a prompt and issuing a single generation call. The service
// holds no per-request state; each Answer call is independent.
type ChatService struct {
	corpus     []domain.CorpusEntry
	builder    *PromptBuilder
	generator  driven.Generator
	credential driven.CredentialSource
}

// NewChatService creates a chat service over an already-loaded corpus.
// The corpus is injected rather than read from disk so tests can substitute
// fixtures; it must not be mutated after construction.
func NewChatService(
	corpus []domain.CorpusEntry,
	builder *PromptBuilder,
	generator driven.Generator,
	credential driven.CredentialSource,
) *ChatService {
	if builder == nil {
		builder = NewPromptBuilder(nil)
	}
	return &ChatService{
		corpus:     corpus,
		builder:    builder,
		generator:  generator,
		credential: credential,
	}
}

// Answer implements driving.ChatService.
func (s *ChatService) Answer(ctx context.Context, question string) (string, error) {
	logger.Section("Answer Pipeline")

	// Credential is validated before anything else; no outbound call is
	// attempted when it is missing or still the placeholder.
	key := ""
	if s.credential != nil {
		key = s.credential()
	}
	if key == "" || strings.Contains(key, placeholderMarker) {
		logger.Warn("credential missing or placeholder, refusing to call upstream")
		return "", domain.NewAnswerError(domain.KindConfiguration, msgConfiguration)
	}

	prompt := s.builder.Build(s.corpus, question)
	logger.Debug("prompt built: %d bytes from %d corpus entries", len(prompt), len(s.corpus))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", s.mapGenerateError(err)
	}

	logger.Debug("answer received: %d bytes", len(text))
	return text, nil
}

// mapGenerateError translates generator failures into tagged answer errors
// carrying the fixed user-facing messages.
func (s *ChatService) mapGenerateError(err error) *domain.AnswerError {
	var upstream *domain.UpstreamStatusError

	switch {
	case errors.Is(err, domain.ErrModelNotFound):
		return domain.NewAnswerError(domain.KindModelUnavailable, msgModelUnavailable)

	case errors.Is(err, domain.ErrRateLimited):
		return domain.NewAnswerError(domain.KindRateLimited, msgRateLimited)

	case errors.Is(err, domain.ErrNoTextInResponse):
		return domain.NewAnswerError(domain.KindMalformedResponse, msgNoText)

	case errors.As(err, &upstream):
		return domain.NewAnswerError(domain.KindUpstream, upstream.Error())

	default:
		logger.Warn("answer pipeline failed: %v", err)
		message := err.Error()
		if message == "" {
			message = msgInternalFallback
		}
		return domain.NewAnswerError(domain.KindInternal, message)
	}
}
