package driven

// Prompt template names.
const (
	// PromptAnswer is the template wrapping the corpus context and the
	// user's question for the generation request.
	PromptAnswer = "answer"
)

// PromptStore loads prompt templates by name.
// Implementations fall back to embedded defaults when a template is
// missing or unreadable.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
