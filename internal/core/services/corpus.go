package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
	"github.com/threadlens/threadlens/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService owns the loaded corpus. The corpus is replaced
// wholesale on load; readers always see a complete, immutable snapshot.
type CorpusService struct {
	source driven.CorpusSource

	mu     sync.RWMutex
	posts  []domain.Post
	loaded bool
}

// NewCorpusService creates a corpus service over the given source.
func NewCorpusService(source driven.CorpusSource) *CorpusService {
	return &CorpusService{source: source}
}

// Load reads the corpus from the configured source.
func (s *CorpusService) Load(ctx context.Context) error {
	posts, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	s.mu.Lock()
	s.posts = posts
	s.loaded = true
	s.mu.Unlock()

	return nil
}

// Posts returns the loaded corpus in input order.
// Callers must not mutate the returned slice.
func (s *CorpusService) Posts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

// Loaded reports whether a corpus has been loaded.
func (s *CorpusService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Platforms returns the distinct platforms present, sorted.
func (s *CorpusService) Platforms() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for i := range s.posts {
		seen[s.posts[i].Platform] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Communities returns the most active communities, most posts first,
// at most limit entries (all when limit <= 0). Ties keep
// first-encountered order.
func (s *CorpusService) Communities(limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range s.posts {
		c := s.posts[i].Community
		if c == "" {
			continue
		}
		if _, ok := counts[c]; !ok {
			order = append(order, c)
		}
		counts[c]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

// WatchAndReload reloads the corpus whenever the source changes, until
// the context is cancelled. A failed reload keeps the previous corpus
// and logs a warning rather than propagating; only the inability to
// watch at all is an error.
func (s *CorpusService) WatchAndReload(ctx context.Context, onReload func()) error {
	changes, err := s.source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch corpus source: %w", err)
	}

	go func() {
		for range changes {
			if err := s.Load(ctx); err != nil {
				logger.Warn("corpus reload failed, keeping previous corpus: %v", err)
				continue
			}
			logger.Info("corpus reloaded: %d posts", len(s.Posts()))
			if onReload != nil {
				onReload()
			}
		}
	}()

	return nil
}
