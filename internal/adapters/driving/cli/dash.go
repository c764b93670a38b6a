package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/adapters/driving/tui"
)

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"dashboard"},
	Short:   "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard shows the corpus summary, activity trends, keyword and
contributor rankings, the interaction network and an assistant chat
panel, all scoped to a shared filter bar. The corpus file is watched
and the dashboard refreshes when it changes.

Controls:
  tab/shift+tab - Switch panels
  f             - Edit filters
  r             - Reload corpus
  ?             - Toggle help
  q             - Quit`,
	RunE: runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in dashboard: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	if err := loadCorpus(cmd); err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Services{
		Corpus:    corpusService,
		Analytics: analyticsService,
		Assistant: assistantService,
		Renderer:  graphRenderer,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	app.StartWatching(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
