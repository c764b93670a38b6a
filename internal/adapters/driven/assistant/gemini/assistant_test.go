package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadlens/threadlens/internal/core/domain"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAssistantUnavailable)
}

func TestBuildChatPrompt(t *testing.T) {
	got := buildChatPrompt("who posts most?", "CURRENT DATASET ANALYSIS: ...")

	assert.Contains(t, got, "DATA CONTEXT:\nCURRENT DATASET ANALYSIS: ...")
	assert.Contains(t, got, "USER QUESTION:\nwho posts most?")
}

func TestParseQuestions(t *testing.T) {
	text := "First question?\n\n  Second question?  \nThird\nFourth\nFifth\nSixth"

	got := parseQuestions(text)
	assert.Equal(t, []string{"First question?", "Second question?", "Third", "Fourth", "Fifth"}, got)
}

func TestParseQuestions_Empty(t *testing.T) {
	assert.Empty(t, parseQuestions(""))
	assert.Empty(t, parseQuestions("\n\n  \n"))
}
