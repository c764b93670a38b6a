package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
)

// mockSource is a hand-rolled driven.CorpusSource for service tests.
type mockSource struct {
	mu      sync.Mutex
	posts   []domain.Post
	loadErr error
	loads   int
	events  chan struct{}
}

var _ driven.CorpusSource = (*mockSource)(nil)

func (m *mockSource) Load(ctx context.Context) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]domain.Post, len(m.posts))
	copy(out, m.posts)
	return out, nil
}

func (m *mockSource) Watch(ctx context.Context) (<-chan struct{}, error) {
	if m.events == nil {
		m.events = make(chan struct{}, 1)
	}
	return m.events, nil
}

func (m *mockSource) Path() string { return "/tmp/mock.jsonl" }
func (m *mockSource) Close() error { return nil }

func (m *mockSource) setPosts(posts []domain.Post, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = posts
	m.loadErr = err
}

func TestCorpusService_LoadAndPosts(t *testing.T) {
	src := &mockSource{posts: []domain.Post{post("1", "a", "x", "", day(0))}}
	svc := NewCorpusService(src)

	assert.False(t, svc.Loaded())
	require.NoError(t, svc.Load(context.Background()))
	assert.True(t, svc.Loaded())
	assert.Len(t, svc.Posts(), 1)
}

func TestCorpusService_LoadError(t *testing.T) {
	src := &mockSource{loadErr: domain.ErrSourceNotFound}
	svc := NewCorpusService(src)

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.False(t, svc.Loaded())
}

func TestCorpusService_ReloadReplacesWholesale(t *testing.T) {
	src := &mockSource{posts: []domain.Post{
		post("1", "a", "x", "", day(0)),
		post("2", "b", "x", "", day(0)),
	}}
	svc := NewCorpusService(src)
	require.NoError(t, svc.Load(context.Background()))
	require.Len(t, svc.Posts(), 2)

	src.setPosts([]domain.Post{post("3", "c", "y", "", day(1))}, nil)
	require.NoError(t, svc.Load(context.Background()))

	got := svc.Posts()
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestCorpusService_Platforms(t *testing.T) {
	src := &mockSource{posts: []domain.Post{
		post("1", "a", "x", "", day(0)),
		post("2", "b", "y", "", day(0)),
	}}
	src.posts[1].Platform = "mastodon"
	svc := NewCorpusService(src)
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, []string{"mastodon", "reddit"}, svc.Platforms())
}

func TestCorpusService_CommunitiesByFrequency(t *testing.T) {
	src := &mockSource{posts: []domain.Post{
		post("1", "a", "rust", "", day(0)),
		post("2", "b", "golang", "", day(0)),
		post("3", "c", "golang", "", day(0)),
		post("4", "d", "", "", day(0)), // blank community excluded
	}}
	svc := NewCorpusService(src)
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, []string{"golang", "rust"}, svc.Communities(0))
	assert.Equal(t, []string{"golang"}, svc.Communities(1))
}

func TestCorpusService_WatchAndReload(t *testing.T) {
	src := &mockSource{posts: []domain.Post{post("1", "a", "x", "", day(0))}}
	svc := NewCorpusService(src)
	require.NoError(t, svc.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	require.NoError(t, svc.WatchAndReload(ctx, func() { reloaded <- struct{}{} }))

	src.setPosts([]domain.Post{post("2", "b", "y", "", day(1))}, nil)
	src.events <- struct{}{}

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}

	got := svc.Posts()
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestCorpusService_FailedReloadKeepsPreviousCorpus(t *testing.T) {
	src := &mockSource{posts: []domain.Post{post("1", "a", "x", "", day(0))}}
	svc := NewCorpusService(src)
	require.NoError(t, svc.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 1)
	require.NoError(t, svc.WatchAndReload(ctx, func() { reloaded <- struct{}{} }))

	src.setPosts(nil, errors.New("disk gone"))
	src.events <- struct{}{}

	// The callback only fires on successful reloads, so give the
	// goroutine a moment and then confirm the corpus is untouched.
	select {
	case <-reloaded:
		t.Fatal("callback fired for a failed reload")
	case <-time.After(200 * time.Millisecond):
	}

	got := svc.Posts()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
