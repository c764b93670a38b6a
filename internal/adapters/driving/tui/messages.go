package tui

// corpusReloadedMsg is sent when the watched corpus file changed and
// was reloaded.
type corpusReloadedMsg struct{}

// answerMsg carries a completed assistant exchange.
type answerMsg struct {
	question string
	answer   string
}

// assistantErrMsg carries a failed assistant exchange.
type assistantErrMsg struct {
	question string
	err      error
}

// suggestionsMsg carries suggested questions for the chat panel.
type suggestionsMsg struct {
	questions []string
}
