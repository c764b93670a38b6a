package cli

import (
	"context"
	"sort"
	"time"

	"github.com/threadlens/threadlens/internal/adapters/driven/render/text"
	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
	"github.com/threadlens/threadlens/internal/core/services"
)

// fakeCorpus is an in-memory driving.CorpusService for command tests.
type fakeCorpus struct {
	posts []domain.Post
}

var _ driving.CorpusService = (*fakeCorpus)(nil)

func (f *fakeCorpus) Load(ctx context.Context) error { return nil }
func (f *fakeCorpus) Posts() []domain.Post           { return f.posts }
func (f *fakeCorpus) Loaded() bool                   { return true }

func (f *fakeCorpus) Platforms() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range f.posts {
		if _, ok := seen[p.Platform]; !ok {
			seen[p.Platform] = struct{}{}
			out = append(out, p.Platform)
		}
	}
	sort.Strings(out)
	return out
}

func (f *fakeCorpus) Communities(limit int) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range f.posts {
		if p.Community == "" {
			continue
		}
		if _, ok := seen[p.Community]; !ok {
			seen[p.Community] = struct{}{}
			out = append(out, p.Community)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeCorpus) WatchAndReload(ctx context.Context, onReload func()) error { return nil }

func testPosts() []domain.Post {
	mk := func(id, author, community, title string, score int, created time.Time) domain.Post {
		return domain.Post{
			ID:           id,
			Author:       author,
			Platform:     "reddit",
			Community:    community,
			Title:        title,
			Score:        score,
			CreatedAt:    created,
			CombinedText: domain.DeriveCombinedText(title, ""),
		}
	}
	monday := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	return []domain.Post{
		mk("1", "alice", "golang", "generics deep dive", 40, monday),
		mk("2", "alice", "golang", "error handling patterns", 25, monday.Add(24*time.Hour)),
		mk("3", "bob", "rust", "borrow checker tales", 30, monday.Add(48*time.Hour)),
	}
}

// setupTestServices wires real analytics over an in-memory corpus and
// returns a cleanup that restores the previous services.
func setupTestServices() func() {
	prevCorpus := corpusService
	prevAnalytics := analyticsService
	prevAssistant := assistantService
	prevRenderer := graphRenderer

	corpusService = &fakeCorpus{posts: testPosts()}
	analyticsService = services.NewAnalyticsService()
	assistantService = services.NewAssistantService(nil)
	graphRenderer = text.NewRenderer()

	return func() {
		corpusService = prevCorpus
		analyticsService = prevAnalytics
		assistantService = prevAssistant
		graphRenderer = prevRenderer
	}
}
