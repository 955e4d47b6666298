package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting is the single assistant message every fresh transcript starts with.
const Greeting = "Hello! I'm your weather assistant. Please enter a location to get the current weather information."

// Message is one turn in the transcript. Messages are append-only: once
// written they are never mutated, and only Clear removes them.
type Message struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Timestamp is unix milliseconds; zero means unknown.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// NewMessage builds a message with a fresh id and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}
