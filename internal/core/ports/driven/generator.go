// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import "context"

// CredentialSource supplies the API credential. It is called at validation
// time for every request so that environment changes take effect without a
// restart.
type CredentialSource func() string

// Generator produces text from a prompt using an external language model.
//
// Implementations send the prompt as the sole content of a single-turn
// request. No retries and no backoff: one call per Generate.
type Generator interface {
	// Generate sends the prompt and returns the model's text.
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelName returns the model identifier in use.
	ModelName() string
}

// ModelInfo describes one model available to the configured credential.
type ModelInfo struct {
	// Name is the full resource name, e.g. "models/gemini-2.0-flash".
	Name string

	// DisplayName is the human-readable model name.
	DisplayName string

	// Description summarises the model.
	Description string

	// SupportedMethods lists the generation methods the model supports.
	SupportedMethods []string
}

// SupportsGeneration reports whether the model can serve generateContent.
func (m ModelInfo) SupportsGeneration() bool {
	for _, method := range m.SupportedMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// ModelLister enumerates the models available to the configured credential.
// Used by the models probe command, not by the answer path.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
