// Package cli implements the cobra command tree. Commands talk to the
// core exclusively through the driving ports; wiring happens in
// cmd/threadlens.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
	"github.com/threadlens/threadlens/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by cmd/threadlens before Execute runs. The corpus
// service is built lazily because the data path comes from a flag.
var (
	corpusService    driving.CorpusService
	newCorpus        func(path string) (driving.CorpusService, error)
	analyticsService driving.AnalyticsService
	assistantService driving.AssistantService
	configStore      driven.ConfigStore
	graphRenderer    driven.GraphRenderer
)

// Persistent flags shared by every subcommand.
var (
	flagDataPath string
	flagVerbose  bool
)

// Services bundles everything the command tree needs.
type Services struct {
	// NewCorpus builds a corpus service for the resolved data path.
	NewCorpus   func(path string) (driving.CorpusService, error)
	Analytics   driving.AnalyticsService
	Assistant   driving.AssistantService
	ConfigStore driven.ConfigStore
	Renderer    driven.GraphRenderer
	Version     string
}

// SetServices injects the service implementations.
func SetServices(s *Services) {
	newCorpus = s.NewCorpus
	analyticsService = s.Analytics
	assistantService = s.Assistant
	configStore = s.ConfigStore
	graphRenderer = s.Renderer
	if s.Version != "" {
		version = s.Version
	}
}

var rootCmd = &cobra.Command{
	Use:   "threadlens",
	Short: "Interactive social media analytics from the terminal",
	Long: `ThreadLens loads a JSONL corpus of social media posts and answers
questions about it: activity trends, keyword frequencies, top
contributors and the author-community interaction network.

Point it at a corpus with --data or set a default path:
  threadlens config set data.path ./posts.jsonl`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataPath, "data", "d", "", "path to the JSONL corpus")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// DataPath resolves the corpus path: the --data flag wins, then the
// configured default.
func DataPath() (string, error) {
	if flagDataPath != "" {
		return flagDataPath, nil
	}
	if configStore != nil {
		if p := configStore.GetString("data.path"); p != "" {
			return p, nil
		}
	}
	return "", errors.New("no corpus configured: pass --data or run 'threadlens config set data.path <file>'")
}

// loadCorpus resolves the data path and loads the corpus before a
// command runs. Repeated calls reuse the loaded corpus.
func loadCorpus(cmd *cobra.Command) error {
	if corpusService == nil {
		if newCorpus == nil {
			return errors.New("corpus service not configured")
		}
		path, err := DataPath()
		if err != nil {
			return err
		}
		corpusService, err = newCorpus(path)
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
	}
	if corpusService.Loaded() {
		return nil
	}
	if err := corpusService.Load(cmd.Context()); err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	return nil
}
