package services

import (
	"sort"

	"github.com/threadlens/threadlens/internal/core/domain"
	"github.com/threadlens/threadlens/internal/logger"
)

// InteractionGraph builds the bipartite author-community graph from the
// filtered set. The top authors and top communities are each selected
// independently from the full filtered set, then the set is restricted
// to posts whose author AND community both made the cut. Every
// surviving (author, community) pair becomes one weighted edge; nodes
// with no qualifying edge are omitted entirely.
func (s *AnalyticsService) InteractionGraph(
	posts []domain.Post, topAuthors, topCommunities int,
) *domain.InteractionGraph {
	if topAuthors <= 0 {
		topAuthors = DefaultGraphAuthors
	}
	if topCommunities <= 0 {
		topCommunities = DefaultGraphCommunities
	}

	g := &domain.InteractionGraph{}
	if len(posts) == 0 {
		return g
	}

	authorSet := topByCount(posts, topAuthors, func(p *domain.Post) string { return p.Author })
	communitySet := topByCount(posts, topCommunities, func(p *domain.Post) string { return p.Community })

	// Double restriction, then per-pair counting.
	type pair struct{ author, community string }
	weights := make(map[pair]int)
	pairOrder := make([]pair, 0)

	for i := range posts {
		p := &posts[i]
		if _, ok := authorSet[p.Author]; !ok {
			continue
		}
		if _, ok := communitySet[p.Community]; !ok {
			continue
		}
		key := pair{p.Author, p.Community}
		if _, seen := weights[key]; !seen {
			pairOrder = append(pairOrder, key)
		}
		weights[key]++
	}

	if len(weights) == 0 {
		logger.Debug("interaction graph: top authors and communities have no overlap")
		return g
	}

	nodeSeen := make(map[string]struct{})
	addNode := func(n domain.GraphNode) {
		// Author and community namespaces may collide on the raw
		// string; key by type as well.
		key := n.Type.String() + "\x00" + n.ID
		if _, ok := nodeSeen[key]; ok {
			return
		}
		nodeSeen[key] = struct{}{}
		g.Nodes = append(g.Nodes, n)
	}

	for _, key := range pairOrder {
		addNode(domain.GraphNode{
			ID:    key.author,
			Type:  domain.NodeAuthor,
			Label: key.author,
		})
		addNode(domain.GraphNode{
			ID:    key.community,
			Type:  domain.NodeCommunity,
			Label: "r/" + key.community,
		})
		g.Edges = append(g.Edges, domain.GraphEdge{
			Author:    key.author,
			Community: key.community,
			Weight:    weights[key],
		})
	}

	logger.Debug("interaction graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	return g
}

// GraphStats computes structural statistics for a graph. All values are
// zero for the empty graph; density is zero (not NaN) below two nodes.
func (s *AnalyticsService) GraphStats(g *domain.InteractionGraph) domain.GraphStats {
	if g == nil || g.IsEmpty() {
		return domain.GraphStats{}
	}

	n := g.NodeCount()
	e := g.EdgeCount()

	stats := domain.GraphStats{Nodes: n, Edges: e}
	if n > 1 {
		stats.Density = 2 * float64(e) / (float64(n) * float64(n-1))
	}

	adj := adjacency(g)
	stats.ConnectedComponents = componentCount(adj)
	stats.AvgClustering = averageClustering(adj)

	return stats
}

// topByCount groups posts by key and returns the set of the limit most
// frequent keys. Blank keys are excluded, as in the community facet.
// Ties break toward first-encountered order.
func topByCount(posts []domain.Post, limit int, key func(*domain.Post) string) map[string]struct{} {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range posts {
		k := key(&posts[i])
		if k == "" {
			continue
		}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	set := make(map[string]struct{}, len(order))
	for _, k := range order {
		set[k] = struct{}{}
	}
	return set
}

// adjacency builds neighbour sets keyed by typed node key.
func adjacency(g *domain.InteractionGraph) map[string]map[string]struct{} {
	adj := make(map[string]map[string]struct{}, len(g.Nodes))
	for _, node := range g.Nodes {
		adj[node.Type.String()+"\x00"+node.ID] = make(map[string]struct{})
	}
	for _, edge := range g.Edges {
		a := domain.NodeAuthor.String() + "\x00" + edge.Author
		c := domain.NodeCommunity.String() + "\x00" + edge.Community
		adj[a][c] = struct{}{}
		adj[c][a] = struct{}{}
	}
	return adj
}

// componentCount counts connected components via traversal.
func componentCount(adj map[string]map[string]struct{}) int {
	visited := make(map[string]struct{}, len(adj))
	components := 0

	for start := range adj {
		if _, ok := visited[start]; ok {
			continue
		}
		components++

		stack := []string{start}
		visited[start] = struct{}{}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for next := range adj[cur] {
				if _, ok := visited[next]; !ok {
					visited[next] = struct{}{}
					stack = append(stack, next)
				}
			}
		}
	}

	return components
}

// averageClustering computes the mean local clustering coefficient over
// all nodes, counting nodes of degree below two as zero. For a
// bipartite graph the result is always zero, but the computation stays
// general so the stat remains honest if the graph shape ever changes.
func averageClustering(adj map[string]map[string]struct{}) float64 {
	if len(adj) == 0 {
		return 0
	}

	var sum float64
	for _, neighbours := range adj {
		k := len(neighbours)
		if k < 2 {
			continue
		}

		links := 0
		for a := range neighbours {
			for b := range neighbours {
				if a >= b {
					continue
				}
				if _, ok := adj[a][b]; ok {
					links++
				}
			}
		}
		sum += 2 * float64(links) / (float64(k) * float64(k-1))
	}

	return sum / float64(len(adj))
}
