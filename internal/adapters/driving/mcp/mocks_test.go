package mcp

import (
	"context"
	"sort"
	"time"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driving"
)

// mockCorpusService serves a fixed post slice.
type mockCorpusService struct {
	posts []domain.Post
}

var _ driving.CorpusService = (*mockCorpusService)(nil)

func (m *mockCorpusService) Load(ctx context.Context) error { return nil }
func (m *mockCorpusService) Posts() []domain.Post           { return m.posts }
func (m *mockCorpusService) Loaded() bool                   { return true }

func (m *mockCorpusService) Platforms() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range m.posts {
		if _, ok := seen[p.Platform]; !ok {
			seen[p.Platform] = struct{}{}
			out = append(out, p.Platform)
		}
	}
	sort.Strings(out)
	return out
}

func (m *mockCorpusService) Communities(limit int) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range m.posts {
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

func (m *mockCorpusService) WatchAndReload(ctx context.Context, onReload func()) error {
	return nil
}

func corpusFixture() *mockCorpusService {
	mk := func(id, author, community, title string, created time.Time) domain.Post {
		return domain.Post{
			ID:           id,
			Author:       author,
			Platform:     "reddit",
			Community:    community,
			Title:        title,
			CreatedAt:    created,
			CombinedText: domain.DeriveCombinedText(title, ""),
		}
	}
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	return &mockCorpusService{posts: []domain.Post{
		mk("1", "alice", "golang", "generics deep dive", base),
		mk("2", "alice", "golang", "generics in practice", base.Add(24*time.Hour)),
		mk("3", "bob", "rust", "lifetimes explained", base.Add(48*time.Hour)),
	}}
}
