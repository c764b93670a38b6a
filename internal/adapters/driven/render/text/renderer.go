// Package text renders interaction graphs as plain text for terminals
// that cannot display a plotted network. Communities become headed
// sections with per-author weight bars underneath.
package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.GraphRenderer = (*Renderer)(nil)

// maxBarWidth caps the weight bars so a single hot pair cannot blow
// out the layout.
const maxBarWidth = 40

// Renderer draws an interaction graph as indented text sections.
type Renderer struct{}

// NewRenderer creates a plain-text graph renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces one section per community, heaviest first, with the
// community's authors and edge weights underneath.
func (r *Renderer) Render(g *domain.InteractionGraph) (string, error) {
	if g == nil || g.IsEmpty() {
		return "(empty graph)\n", nil
	}

	type section struct {
		community string
		label     string
		total     int
		edges     []domain.GraphEdge
	}

	labels := make(map[string]string)
	for _, n := range g.Nodes {
		if n.Type == domain.NodeCommunity {
			labels[n.ID] = n.Label
		}
	}

	byCommunity := make(map[string]*section)
	var order []string
	maxWeight := 0
	for _, e := range g.Edges {
		sec, ok := byCommunity[e.Community]
		if !ok {
			sec = &section{community: e.Community, label: labels[e.Community]}
			byCommunity[e.Community] = sec
			order = append(order, e.Community)
		}
		sec.edges = append(sec.edges, e)
		sec.total += e.Weight
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}

	sections := make([]*section, 0, len(order))
	for _, c := range order {
		sections = append(sections, byCommunity[c])
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].total > sections[j].total
	})

	var b strings.Builder
	for _, sec := range sections {
		sort.SliceStable(sec.edges, func(i, j int) bool {
			return sec.edges[i].Weight > sec.edges[j].Weight
		})

		fmt.Fprintf(&b, "%s (%d posts, %d authors)\n", sec.label, sec.total, len(sec.edges))
		for _, e := range sec.edges {
			fmt.Fprintf(&b, "  %-20s %s %d\n", e.Author, bar(e.Weight, maxWeight), e.Weight)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// bar scales a weight to the shared bar width so bars are comparable
// across communities.
func bar(weight, maxWeight int) string {
	if maxWeight <= 0 {
		return ""
	}
	width := weight * maxBarWidth / maxWeight
	if width < 1 {
		width = 1
	}
	return strings.Repeat("#", width)
}
