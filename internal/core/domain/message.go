package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks a message typed by the user.
	RoleUser Role = "user"

	// RoleAssistant marks a message produced by the assistant.
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a chat session's message list. Messages are
// owned by a single session, never persisted, and never edited or removed
// once appended.
type ChatMessage struct {
	// ID is unique within the session.
	ID string

	// Role is who authored the message.
	Role Role

	// Content is the message text.
	Content string

	// Timestamp is the wall-clock time the message was created, formatted
	// for display (HH:MM).
	Timestamp string
}

// NewChatMessage creates a message with a fresh ID and the current time.
func NewChatMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().Format("15:04"),
	}
}
