// Package services implements the core application services for regchat.
package services

import (
	"fmt"
	"strings"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/core/ports/driven"
)

// EmptyCorpusNotice replaces the context block when the knowledge file
// could not be loaded, so the model knows it has nothing to answer from.
const EmptyCorpusNotice = "Warning: Knowledge base is empty. System could not load data."

// defaultAnswerPrompt is the fallback template when no PromptStore is
// configured. The first placeholder receives the rendered corpus context,
// the second the user's question.
const defaultAnswerPrompt = `You are an expert assistant for the National Stock Exchange (NSE) of India.
Answer the user's question based strictly on the context below.

CONTEXT:
%s

USER QUESTION:
%s

GUIDELINES:
- Be polite, professional, and concise.
- If the answer is not in the context, state that clearly.
- Use markdown for formatting (bold, lists).`

// PromptBuilder assembles the generation prompt from the corpus and a
// question. Building is deterministic and does no I/O beyond the optional
// template lookup.
type PromptBuilder struct {
	promptStore driven.PromptStore
}

// NewPromptBuilder creates a prompt builder. The prompt store is optional;
// when nil the embedded default template is used.
func NewPromptBuilder(store driven.PromptStore) *PromptBuilder {
	return &PromptBuilder{promptStore: store}
}

// Build renders the full prompt for a question. The entire corpus is
// always included verbatim; there is no truncation or chunk selection.
func (b *PromptBuilder) Build(corpus []domain.CorpusEntry, question string) string {
	template := defaultAnswerPrompt
	if b.promptStore != nil {
		if loaded, err := b.promptStore.Load(driven.PromptAnswer); err == nil && loaded != "" {
			template = loaded
		}
	}
	return fmt.Sprintf(template, RenderContext(corpus), question)
}

// RenderContext flattens the corpus into the prompt's context block. Each
// entry renders as "Source: {id}\n{text}\n---\n"; entries are joined by a
// newline. An empty corpus renders as the warning notice instead.
func RenderContext(corpus []domain.CorpusEntry) string {
	if len(corpus) == 0 {
		return EmptyCorpusNotice
	}

	parts := make([]string, len(corpus))
	for i, entry := range corpus {
		parts[i] = fmt.Sprintf("Source: %s\n%s\n---\n", entry.SourceID, entry.Text)
	}
	return strings.Join(parts, "\n")
}
