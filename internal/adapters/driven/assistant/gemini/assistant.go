// Package gemini implements the driven.Assistant port on top of the
// Google Gemini API. The adapter is optional: when no API key is
// configured the services layer runs without it and every assistant
// surface degrades to fixed fallbacks.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driven.Assistant = (*Assistant)(nil)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `You are an AI assistant specialized in social media analytics and investigative journalism. You help users analyze social media data, identify patterns, and generate insights.

Your capabilities include:
- Analyzing social media trends and patterns
- Explaining data visualizations and statistics
- Identifying potential coordination or amplification patterns
- Suggesting investigation strategies
- Interpreting network analysis results
- Providing context about social media behavior

Guidelines:
- Be helpful, accurate, and professional
- Focus on factual analysis rather than speculation
- Suggest actionable insights for investigation
- Explain technical concepts in accessible language
- Always consider ethical implications of social media analysis
- Respect privacy and avoid identifying specific individuals unless they are public figures
- Provide balanced perspectives on controversial topics

When analyzing data, consider:
- Temporal patterns (when activity occurs)
- Network structures (who connects to whom)
- Content themes and keywords
- Engagement patterns
- Potential coordination indicators`

// Assistant is a Gemini-backed chat assistant.
type Assistant struct {
	client *genai.Client
	model  string
}

// New creates a Gemini assistant. The model parameter may be empty, in
// which case DefaultModel is used.
func New(ctx context.Context, apiKey, model string) (*Assistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", domain.ErrAssistantUnavailable)
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	logger.Debug("gemini assistant initialised (model=%s)", model)

	return &Assistant{client: client, model: model}, nil
}

// Chat answers a question grounded on the supplied data context,
// replaying the prior session turns so the model keeps the thread.
func (a *Assistant) Chat(
	ctx context.Context, history []domain.ChatMessage, question, dataContext string,
) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(buildChatPrompt(question, dataContext), genai.RoleUser))

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, a.generateConfig())
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	return text, nil
}

// SuggestQuestions asks the model for investigation questions suited
// to the current dataset.
func (a *Assistant) SuggestQuestions(ctx context.Context, dataContext string) ([]string, error) {
	prompt := fmt.Sprintf(`Based on this social media data summary, suggest 5 specific, actionable questions that would help with investigative analysis:

%s

Return only the questions, one per line, without numbering or bullets.`, dataContext)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), a.generateConfig())
	if err != nil {
		return nil, fmt.Errorf("gemini suggest: %w", err)
	}

	return parseQuestions(resp.Text()), nil
}

// ModelName returns the configured model identifier.
func (a *Assistant) ModelName() string {
	return a.model
}

// Close releases the assistant. The underlying HTTP client needs no
// teardown, so this exists to satisfy the port.
func (a *Assistant) Close() error {
	return nil
}

func (a *Assistant) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   2048,
	}
}

// buildChatPrompt frames the question with the dataset digest so the
// model answers about the currently filtered data.
func buildChatPrompt(question, dataContext string) string {
	return fmt.Sprintf(`DATA CONTEXT:
%s

USER QUESTION:
%s

Please provide insights, analysis, or suggestions based on the current data and user question.`, dataContext, question)
}

// parseQuestions splits a model response into at most five non-blank
// question lines.
func parseQuestions(text string) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == 5 {
			break
		}
	}
	return questions
}
