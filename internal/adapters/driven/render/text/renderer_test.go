package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadlens/threadlens/internal/core/domain"
)

func sampleGraph() *domain.InteractionGraph {
	return &domain.InteractionGraph{
		Nodes: []domain.GraphNode{
			{ID: "alice", Type: domain.NodeAuthor, Label: "alice"},
			{ID: "bob", Type: domain.NodeAuthor, Label: "bob"},
			{ID: "golang", Type: domain.NodeCommunity, Label: "r/golang"},
			{ID: "rust", Type: domain.NodeCommunity, Label: "r/rust"},
		},
		Edges: []domain.GraphEdge{
			{Author: "alice", Community: "golang", Weight: 4},
			{Author: "bob", Community: "golang", Weight: 1},
			{Author: "bob", Community: "rust", Weight: 2},
		},
	}
}

func TestRender_SectionsOrderedByTotalWeight(t *testing.T) {
	out, err := NewRenderer().Render(sampleGraph())
	require.NoError(t, err)

	golangIdx := strings.Index(out, "r/golang (5 posts, 2 authors)")
	rustIdx := strings.Index(out, "r/rust (2 posts, 1 authors)")
	require.GreaterOrEqual(t, golangIdx, 0)
	require.GreaterOrEqual(t, rustIdx, 0)
	assert.Less(t, golangIdx, rustIdx)
}

func TestRender_AuthorsSortedByWeightWithinSection(t *testing.T) {
	out, err := NewRenderer().Render(sampleGraph())
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))
	assert.Contains(t, out, " 4\n")
	assert.Contains(t, out, " 1\n")
}

func TestRender_BarsScaleToHeaviestEdge(t *testing.T) {
	out, err := NewRenderer().Render(sampleGraph())
	require.NoError(t, err)

	// Weight 4 is the maximum and gets the full bar; weight 1 still
	// draws at least one mark.
	assert.Contains(t, out, strings.Repeat("#", maxBarWidth)+" 4")
	assert.Contains(t, out, "# 1")
}

func TestRender_EmptyGraph(t *testing.T) {
	out, err := NewRenderer().Render(&domain.InteractionGraph{})
	require.NoError(t, err)
	assert.Equal(t, "(empty graph)\n", out)

	out, err = NewRenderer().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "(empty graph)\n", out)
}
