package driven

import (
	"github.com/threadlens/threadlens/internal/core/domain"
)

// GraphRenderer turns an interaction graph into something displayable.
// The core only produces nodes, edges and weights; layout and styling
// belong to the renderer. When rendering fails, callers fall back to a
// plain GraphStats summary rather than aborting the dashboard.
type GraphRenderer interface {
	// Render produces a displayable representation of the graph.
	Render(g *domain.InteractionGraph) (string, error)
}
