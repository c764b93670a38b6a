package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
	"github.com/threadlens/threadlens/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

const (
	// assistantTimeout bounds a single model call so a slow remote API
	// never wedges the dashboard.
	assistantTimeout = 60 * time.Second

	// assistantRate throttles model calls to stay inside free-tier
	// request-per-minute quotas.
	assistantRate = rate.Limit(10.0 / 60.0)

	// historyWindow is how many prior turns accompany each question.
	historyWindow = 6
)

// fallbackQuestions are offered when no model is configured or the
// model call fails; the chat panel stays useful either way.
var fallbackQuestions = []string{
	"What patterns can you see in the posting times?",
	"Who are the most influential contributors?",
	"What topics are trending in this dataset?",
	"Are there any signs of coordinated activity?",
	"What investigation strategies would you recommend?",
}

// AssistantService wraps the optional Assistant port with session
// management, rate limiting and timeouts. When no assistant is
// configured every method degrades to a textual fallback; the
// analytics path is never blocked on the assistant.
type AssistantService struct {
	assistant driven.Assistant
	limiter   *rate.Limiter
}

// NewAssistantService creates an assistant service.
// The assistant parameter is optional (can be nil).
func NewAssistantService(assistant driven.Assistant) *AssistantService {
	return &AssistantService{
		assistant: assistant,
		limiter:   rate.NewLimiter(assistantRate, 3),
	}
}

// Available reports whether a backing model is configured.
func (s *AssistantService) Available() bool {
	return s.assistant != nil
}

// NewSession creates an empty chat session.
func (s *AssistantService) NewSession() *domain.ChatSession {
	return &domain.ChatSession{ID: uuid.New().String()}
}

// Ask answers a question grounded on the data context and records the
// exchange in the session.
func (s *AssistantService) Ask(
	ctx context.Context, session *domain.ChatSession, question, dataContext string,
) (string, error) {
	if s.assistant == nil {
		return "", domain.ErrAssistantUnavailable
	}
	if session == nil {
		return "", domain.ErrInvalidInput
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("assistant rate limit: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	logger.Debug("assistant question: %q (model=%s)", question, s.assistant.ModelName())

	history := session.Recent(historyWindow)
	answer, err := s.assistant.Chat(callCtx, history, question, dataContext)
	if err != nil {
		return "", fmt.Errorf("assistant chat: %w", err)
	}

	session.Append(domain.RoleUser, question)
	session.Append(domain.RoleAssistant, answer)

	return answer, nil
}

// Suggestions proposes questions for the current data context, falling
// back to a fixed list when the model is unavailable or errors.
func (s *AssistantService) Suggestions(ctx context.Context, dataContext string) []string {
	if s.assistant == nil {
		return fallbackQuestions
	}

	callCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	questions, err := s.assistant.SuggestQuestions(callCtx, dataContext)
	if err != nil || len(questions) == 0 {
		logger.Debug("suggested questions unavailable, using fallback: %v", err)
		return fallbackQuestions
	}
	if len(questions) > 5 {
		questions = questions[:5]
	}
	return questions
}
