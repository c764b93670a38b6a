package domain

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	// RoleUser marks a message typed by the user.
	RoleUser ChatRole = "user"

	// RoleAssistant marks a model response.
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
	At      time.Time
}

// ChatSession holds the assistant conversation state for one dashboard
// session. It is owned by the presentation layer and passed explicitly
// into the assistant service; the analytics core never touches it.
type ChatSession struct {
	// ID identifies the session.
	ID string

	// Messages is the conversation in order.
	Messages []ChatMessage
}

// Append records one turn.
func (s *ChatSession) Append(role ChatRole, content string) {
	s.Messages = append(s.Messages, ChatMessage{
		Role:    role,
		Content: content,
		At:      time.Now(),
	})
}

// Recent returns up to n of the most recent messages.
func (s *ChatSession) Recent(n int) []ChatMessage {
	if n <= 0 || len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// Clear drops the conversation history, keeping the session identity.
func (s *ChatSession) Clear() {
	s.Messages = nil
}
