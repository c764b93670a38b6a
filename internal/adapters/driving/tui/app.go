// Package tui implements the interactive terminal dashboard following
// the Elm architecture. All data flows in through the driving ports;
// the dashboard holds no state the services cannot rebuild.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadlens/threadlens/internal/adapters/driving/tui/styles"
	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/logger"
)

// tab identifies a dashboard panel.
type tab int

const (
	tabOverview tab = iota
	tabTrends
	tabKeywords
	tabContributors
	tabNetwork
	tabChat
	tabCount
)

var tabNames = [tabCount]string{
	"Overview", "Trends", "Keywords", "Contributors", "Network", "Chat",
}

// App is the dashboard application model.
// It implements tea.Model for use with Bubbletea.
type App struct {
	services *Services
	styles   *styles.Styles
	ctx      context.Context

	activeTab tab
	width     int
	height    int
	ready     bool
	showHelp  bool
	err       error

	// filterInput edits the keyword filter; communities cycle with a
	// key instead of free text.
	filterInput   textinput.Model
	filterFocused bool
	communities   []string
	communityIdx  int // -1 selects all communities

	chatInput   textinput.Model
	chatLog     []string
	session     *domain.ChatSession
	suggestions []string
	thinking    bool

	// posts is the filtered corpus the visible panels are built from.
	posts []domain.Post
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the dashboard application.
func NewApp(services *Services) (*App, error) {
	if err := services.Validate(); err != nil {
		return nil, fmt.Errorf("creating dashboard: %w", err)
	}

	filterInput := textinput.New()
	filterInput.Placeholder = "keyword filter"
	filterInput.CharLimit = 80

	chatInput := textinput.New()
	chatInput.Placeholder = "ask about the data"
	chatInput.CharLimit = 400

	a := &App{
		services:     services,
		styles:       styles.DefaultStyles(),
		ctx:          context.Background(),
		filterInput:  filterInput,
		chatInput:    chatInput,
		communityIdx: -1,
	}
	a.refresh()

	if services.Assistant != nil {
		a.session = services.Assistant.NewSession()
	}

	return a, nil
}

// StartWatching begins corpus file watching and pushes reload messages
// into the running program. Call after tea.NewProgram.
func (a *App) StartWatching(p *tea.Program) {
	err := a.services.Corpus.WatchAndReload(a.ctx, func() {
		p.Send(corpusReloadedMsg{})
	})
	if err != nil {
		logger.Warn("corpus watch unavailable: %v", err)
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("threadlens - Social Media Analytics"),
		textinput.Blink,
		a.suggestionsCmd(),
	)
}

// filterSpec builds the active filter from the UI state.
func (a *App) filterSpec() domain.FilterSpec {
	spec := domain.FilterSpec{Keyword: strings.TrimSpace(a.filterInput.Value())}
	if a.communityIdx >= 0 && a.communityIdx < len(a.communities) {
		spec.Community = a.communities[a.communityIdx]
	}
	return spec
}

// refresh recomputes the filtered corpus the panels render from.
func (a *App) refresh() {
	all := a.services.Corpus.Posts()
	a.communities = a.services.Corpus.Communities(20)
	if a.communityIdx >= len(a.communities) {
		a.communityIdx = -1
	}
	a.posts = a.services.Analytics.Filter(all, a.filterSpec())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case corpusReloadedMsg:
		a.refresh()
		return a, nil

	case answerMsg:
		a.thinking = false
		a.err = nil
		a.chatLog = append(a.chatLog, "you: "+msg.question, "assistant: "+msg.answer)
		return a, nil

	case assistantErrMsg:
		a.thinking = false
		a.err = msg.err
		a.chatLog = append(a.chatLog, "you: "+msg.question, "error: "+msg.err.Error())
		return a, nil

	case suggestionsMsg:
		a.suggestions = msg.questions
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

//nolint:gocyclo // central key dispatch
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The filter input swallows everything except enter and esc while
	// focused.
	if a.filterFocused {
		switch msg.String() {
		case "enter", "esc":
			a.filterFocused = false
			a.filterInput.Blur()
			a.refresh()
			return a, nil
		default:
			var cmd tea.Cmd
			a.filterInput, cmd = a.filterInput.Update(msg)
			return a, cmd
		}
	}

	// Chat input behaves the same on the chat tab.
	if a.activeTab == tabChat && a.chatInput.Focused() {
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(a.chatInput.Value())
			if question == "" {
				return a, nil
			}
			a.chatInput.SetValue("")
			a.thinking = true
			return a, a.askCmd(question)
		case "esc":
			a.chatInput.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			a.chatInput, cmd = a.chatInput.Update(msg)
			return a, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % tabCount
	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab + tabCount - 1) % tabCount
	case "f", "/":
		a.filterFocused = true
		a.filterInput.Focus()
		return a, textinput.Blink
	case "c":
		// Cycle through the busiest communities, wrapping back to all.
		a.communityIdx++
		if a.communityIdx >= len(a.communities) {
			a.communityIdx = -1
		}
		a.refresh()
	case "x":
		a.filterInput.SetValue("")
		a.communityIdx = -1
		a.refresh()
	case "r":
		return a, a.reloadCmd()
	case "i", "enter":
		if a.activeTab == tabChat {
			a.chatInput.Focus()
			return a, textinput.Blink
		}
	case "?":
		a.showHelp = !a.showHelp
	}

	return a, nil
}

// reloadCmd reloads the corpus off the update loop.
func (a *App) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Corpus.Load(a.ctx); err != nil {
			logger.Warn("manual reload failed: %v", err)
		}
		return corpusReloadedMsg{}
	}
}

// askCmd sends a question to the assistant off the update loop.
func (a *App) askCmd(question string) tea.Cmd {
	digest := a.digest()
	return func() tea.Msg {
		if a.services.Assistant == nil || !a.services.Assistant.Available() {
			return assistantErrMsg{question: question, err: domain.ErrAssistantUnavailable}
		}
		answer, err := a.services.Assistant.Ask(a.ctx, a.session, question, digest)
		if err != nil {
			return assistantErrMsg{question: question, err: err}
		}
		return answerMsg{question: question, answer: answer}
	}
}

// suggestionsCmd fetches suggested questions for the chat panel.
func (a *App) suggestionsCmd() tea.Cmd {
	if a.services.Assistant == nil {
		return nil
	}
	digest := a.digest()
	return func() tea.Msg {
		return suggestionsMsg{questions: a.services.Assistant.Suggestions(a.ctx, digest)}
	}
}

// digest assembles the assistant context from the current aggregates.
func (a *App) digest() string {
	an := a.services.Analytics
	stats := an.Summary(a.posts)
	keywords := an.TopKeywords(a.posts, 10)
	contributors := an.TopContributors(a.posts, 10)
	graph := an.InteractionGraph(a.posts, 15, 10)
	return an.Digest(stats, keywords, contributors, an.GraphStats(graph))
}
