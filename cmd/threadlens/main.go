// Command threadlens is an interactive social media analytics tool.
// It loads a JSONL corpus of posts and exposes summaries, trends,
// keyword and contributor rankings, an interaction network, exports,
// an AI assistant and an MCP server over the same analytics core.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/threadlens/threadlens/internal/adapters/driven/assistant/gemini"
	configfile "github.com/threadlens/threadlens/internal/adapters/driven/config/file"
	"github.com/threadlens/threadlens/internal/adapters/driven/render/text"
	"github.com/threadlens/threadlens/internal/adapters/driving/cli"
	"github.com/threadlens/threadlens/internal/connectors/jsonl"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
	"github.com/threadlens/threadlens/internal/core/services"
	"github.com/threadlens/threadlens/internal/logger"
	"github.com/threadlens/threadlens/internal/normalisers/reddit"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open config: %v\n", err)
		os.Exit(1)
	}

	cli.SetServices(&cli.Services{
		NewCorpus:   newCorpusService,
		Analytics:   services.NewAnalyticsService(),
		Assistant:   services.NewAssistantService(newAssistant(configStore)),
		ConfigStore: configStore,
		Renderer:    text.NewRenderer(),
		Version:     version,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newCorpusService builds the corpus pipeline for a JSONL file path.
func newCorpusService(path string) (driving.CorpusService, error) {
	source := jsonl.New(path, reddit.New())
	return services.NewCorpusService(source), nil
}

// newAssistant builds the Gemini adapter when a key is configured.
// The environment variable wins over the stored key; with neither the
// assistant stays nil and every surface falls back.
func newAssistant(configStore driven.ConfigStore) driven.Assistant {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = configStore.GetString("assistant.api_key")
	}
	if apiKey == "" {
		return nil
	}

	assistant, err := gemini.New(context.Background(), apiKey, configStore.GetString("assistant.model"))
	if err != nil {
		logger.Warn("assistant unavailable: %v", err)
		return nil
	}
	return assistant
}
