package mcp

import (
	"github.com/threadlens/threadlens/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Corpus provides the loaded post corpus.
	Corpus driving.CorpusService

	// Analytics provides filtering and aggregation.
	Analytics driving.AnalyticsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	if p.Analytics == nil {
		return ErrMissingAnalyticsService
	}
	return nil
}
