package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
)

// mockAssistant is a hand-rolled driven.Assistant for service tests.
type mockAssistant struct {
	reply       string
	chatErr     error
	suggestions []string
	suggestErr  error

	lastQuestion string
	lastContext  string
	lastHistory  []domain.ChatMessage
}

var _ driven.Assistant = (*mockAssistant)(nil)

func (m *mockAssistant) Chat(ctx context.Context, history []domain.ChatMessage, question, dataContext string) (string, error) {
	m.lastHistory = history
	m.lastQuestion = question
	m.lastContext = dataContext
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.reply, nil
}

func (m *mockAssistant) SuggestQuestions(ctx context.Context, dataContext string) ([]string, error) {
	if m.suggestErr != nil {
		return nil, m.suggestErr
	}
	return m.suggestions, nil
}

func (m *mockAssistant) ModelName() string { return "mock-model" }
func (m *mockAssistant) Close() error      { return nil }

func TestAssistantService_Available(t *testing.T) {
	assert.False(t, NewAssistantService(nil).Available())
	assert.True(t, NewAssistantService(&mockAssistant{}).Available())
}

func TestAssistantService_AskAppendsBothTurns(t *testing.T) {
	mock := &mockAssistant{reply: "42 posts mention cats."}
	svc := NewAssistantService(mock)
	session := svc.NewSession()

	answer, err := svc.Ask(context.Background(), session, "how many cat posts?", "CURRENT DATASET ANALYSIS: ...")
	require.NoError(t, err)
	assert.Equal(t, "42 posts mention cats.", answer)
	assert.Equal(t, "how many cat posts?", mock.lastQuestion)

	require.Len(t, session.Messages, 2)
	assert.Equal(t, domain.RoleUser, session.Messages[0].Role)
	assert.Equal(t, "how many cat posts?", session.Messages[0].Content)
	assert.Equal(t, domain.RoleAssistant, session.Messages[1].Role)
	assert.Equal(t, "42 posts mention cats.", session.Messages[1].Content)
}

func TestAssistantService_AskPassesRecentHistoryOnly(t *testing.T) {
	mock := &mockAssistant{reply: "ok"}
	// Bypass the production limiter so repeated asks do not block.
	svc := &AssistantService{assistant: mock, limiter: rate.NewLimiter(rate.Inf, 1)}
	session := svc.NewSession()

	for i := 0; i < 5; i++ {
		_, err := svc.Ask(context.Background(), session, "q", "ctx")
		require.NoError(t, err)
	}

	// Ten turns recorded, only the trailing window goes to the model.
	assert.Len(t, session.Messages, 10)
	assert.Len(t, mock.lastHistory, historyWindow)
}

func TestAssistantService_AskErrorLeavesSessionUntouched(t *testing.T) {
	mock := &mockAssistant{chatErr: errors.New("quota exceeded")}
	svc := NewAssistantService(mock)
	session := svc.NewSession()

	_, err := svc.Ask(context.Background(), session, "q", "ctx")
	require.Error(t, err)
	assert.Empty(t, session.Messages)
}

func TestAssistantService_AskUnavailable(t *testing.T) {
	svc := NewAssistantService(nil)

	_, err := svc.Ask(context.Background(), svc.NewSession(), "q", "ctx")
	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}

func TestAssistantService_AskNilSession(t *testing.T) {
	svc := NewAssistantService(&mockAssistant{reply: "ok"})

	_, err := svc.Ask(context.Background(), nil, "q", "ctx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssistantService_Suggestions(t *testing.T) {
	mock := &mockAssistant{suggestions: []string{"What drives engagement?", "Who posts most?"}}
	svc := NewAssistantService(mock)

	got := svc.Suggestions(context.Background(), "ctx")
	assert.Equal(t, []string{"What drives engagement?", "Who posts most?"}, got)
}

func TestAssistantService_SuggestionsFallback(t *testing.T) {
	cases := map[string]*AssistantService{
		"no assistant":    NewAssistantService(nil),
		"assistant error": NewAssistantService(&mockAssistant{suggestErr: errors.New("offline")}),
		"empty result":    NewAssistantService(&mockAssistant{}),
	}
	for name, svc := range cases {
		t.Run(name, func(t *testing.T) {
			got := svc.Suggestions(context.Background(), "ctx")
			assert.Equal(t, fallbackQuestions, got)
		})
	}
}

func TestAssistantService_NewSession(t *testing.T) {
	svc := NewAssistantService(nil)

	a, b := svc.NewSession(), svc.NewSession()
	require.NotNil(t, a)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Messages)
}
