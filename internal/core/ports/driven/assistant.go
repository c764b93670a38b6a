package driven

import (
	"context"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// Assistant provides LLM-backed conversation over the analytics digest.
// This is an optional service - when nil, chat features degrade to a
// textual fallback without touching the aggregation path.
//
// Calls may block on network I/O and must honour context cancellation;
// callers are expected to bound them with timeouts.
type Assistant interface {
	// Chat answers a question grounded on the current data context.
	// History carries prior turns so the model can follow the thread.
	Chat(ctx context.Context, history []domain.ChatMessage, question, dataContext string) (string, error)

	// SuggestQuestions proposes questions worth asking about the
	// current data context.
	SuggestQuestions(ctx context.Context, dataContext string) ([]string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
