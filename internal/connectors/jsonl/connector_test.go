package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/normalisers/reddit"
)

// writeFixture writes lines to a temp JSONL file and returns its path.
func writeFixture(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0600))
	return path
}

func newTestConnector(path string) *Connector {
	return New(path, reddit.New())
}

func TestLoad_MissingFile(t *testing.T) {
	c := newTestConnector(filepath.Join(t.TempDir(), "nope.jsonl"))

	posts, err := c.Load(context.Background())
	assert.Nil(t, posts)
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	path := writeFixture(t, `{"id":"a","created_utc":1700000000}
not json at all
{"id":"b","created_utc":1700000100}
{broken
`)
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "a", posts[0].ID)
	assert.Equal(t, "b", posts[1].ID)
}

func TestLoad_DeduplicatesByID_FirstWins(t *testing.T) {
	path := writeFixture(t, `{"id":"a","title":"first","created_utc":1700000000}
{"id":"a","title":"second","created_utc":1700000100}
`)
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "first", posts[0].Title)
}

func TestLoad_DropsPostsWithoutTimestamp(t *testing.T) {
	path := writeFixture(t, `{"id":"a","created_utc":1700000000}
{"id":"b"}
{"id":"c","created_utc":"garbage"}
{"id":"d","created_utc":0}
`)
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].ID)
}

func TestLoad_DataEnvelope(t *testing.T) {
	path := writeFixture(t, `{"data":{"id":"a","title":"Wrapped","created_utc":1700000000}}
`)
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Wrapped", posts[0].Title)
}

func TestLoad_DerivesCombinedText(t *testing.T) {
	path := writeFixture(t, `{"id":"a","title":"Hello WORLD","selftext":"Some Body","created_utc":1700000000}
`)
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello world some body", posts[0].CombinedText)
}

func TestLoad_PreservesInputOrder(t *testing.T) {
	path := writeFixture(t, `{"id":"z","created_utc":1700000300}
{"id":"m","created_utc":1700000100}
{"id":"a","created_utc":1700000200}
`)
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "z", posts[0].ID)
	assert.Equal(t, "m", posts[1].ID)
	assert.Equal(t, "a", posts[2].ID)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFixture(t, "")
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestLoad_BlankLinesIgnored(t *testing.T) {
	path := writeFixture(t, "\n\n{\"id\":\"a\",\"created_utc\":1700000000}\n\n")
	c := newTestConnector(path)

	posts, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestWatch_SignalsOnWrite(t *testing.T) {
	path := writeFixture(t, `{"id":"a","created_utc":1700000000}
`)
	c := newTestConnector(path)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := c.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"id":"b","created_utc":1700000100}`+"\n"), 0600))

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		// Generous deadline for slow CI filesystems.
		t.Fatal("no change event received")
	}
}
