package driving

import (
	"context"

	"github.com/threadlens/threadlens/internal/core/domain"
)

// CorpusService owns the loaded corpus. The corpus is loaded once and
// read-only thereafter; Reload replaces it wholesale.
type CorpusService interface {
	// Load reads the corpus from the configured source. Returns
	// domain.ErrSourceNotFound when the source is missing.
	Load(ctx context.Context) error

	// Posts returns the loaded corpus in input order.
	// Callers must not mutate the returned slice.
	Posts() []domain.Post

	// Loaded reports whether a corpus has been loaded.
	Loaded() bool

	// Platforms returns the distinct platforms present, sorted.
	Platforms() []string

	// Communities returns the most active communities, most posts
	// first, at most limit entries (all when limit <= 0). The UI uses
	// this for the community filter options.
	Communities(limit int) []string

	// WatchAndReload reloads the corpus whenever the underlying source
	// changes, until the context is cancelled. onReload, when non-nil,
	// runs after each successful reload.
	WatchAndReload(ctx context.Context, onReload func()) error
}
