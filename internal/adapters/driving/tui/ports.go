package tui

import (
	"errors"

	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
)

// Services aggregates everything the dashboard needs. Assistant and
// Renderer are optional; the corresponding panels degrade gracefully
// when they are nil.
type Services struct {
	Corpus    driving.CorpusService
	Analytics driving.AnalyticsService
	Assistant driving.AssistantService
	Renderer  driven.GraphRenderer
}

// Validate ensures the required services are set.
func (s *Services) Validate() error {
	if s.Corpus == nil {
		return errors.New("tui: corpus service is required")
	}
	if s.Analytics == nil {
		return errors.New("tui: analytics service is required")
	}
	return nil
}
