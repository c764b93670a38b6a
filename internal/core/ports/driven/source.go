package driven

import (
	"context"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// CorpusSource loads the post corpus from its input source.
// The current implementation reads a JSONL export from disk; the
// interface keeps the core independent of where the lines come from.
type CorpusSource interface {
	// Load reads the whole source and returns the ordered, deduplicated,
	// timestamp-valid corpus. A missing source is fatal and reported as
	// domain.ErrSourceNotFound; every per-line problem merely shrinks
	// the result.
	Load(ctx context.Context) ([]domain.Post, error)

	// Watch reports source changes on the returned channel until the
	// context is cancelled. Each event means the source should be
	// reloaded wholesale. Sources that cannot watch return an error.
	Watch(ctx context.Context) (<-chan struct{}, error)

	// Path returns a human-readable identifier for the source.
	Path() string

	// Close releases resources.
	Close() error
}
