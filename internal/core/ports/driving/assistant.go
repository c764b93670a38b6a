package driving

import (
	"context"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// AssistantService drives the chat assistant. The session is owned by
// the caller and passed explicitly; the service appends both sides of
// each exchange to it.
type AssistantService interface {
	// Available reports whether a backing model is configured.
	Available() bool

	// Ask answers a question grounded on the data context and records
	// the exchange in the session. Returns
	// domain.ErrAssistantUnavailable when no model is configured.
	Ask(ctx context.Context, session *domain.ChatSession, question, dataContext string) (string, error)

	// Suggestions proposes questions for the current data context,
	// falling back to a fixed list when the model is unavailable.
	Suggestions(ctx context.Context, dataContext string) []string

	// NewSession creates an empty chat session.
	NewSession() *domain.ChatSession
}
