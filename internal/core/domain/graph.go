package domain

// NodeType distinguishes the two sides of the interaction graph.
type NodeType int

const (
	// NodeAuthor marks an author node.
	NodeAuthor NodeType = iota

	// NodeCommunity marks a community node.
	NodeCommunity
)

// String returns the node type name.
func (t NodeType) String() string {
	if t == NodeCommunity {
		return "community"
	}
	return "author"
}

// GraphNode is one node of the interaction graph. Identity is the raw
// author or community string; Label is the decorated display form.
type GraphNode struct {
	ID    string
	Type  NodeType
	Label string
}

// GraphEdge is one undirected author-community edge. Weight is the
// number of posts by that author in that community; it is never zero.
type GraphEdge struct {
	Author    string
	Community string
	Weight    int
}

// InteractionGraph is the undirected bipartite author-community graph
// built from the filtered set, restricted to top contributors and top
// communities. Nodes and edges are ordered deterministically.
type InteractionGraph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// NodeCount returns the number of nodes.
func (g *InteractionGraph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *InteractionGraph) EdgeCount() int { return len(g.Edges) }

// IsEmpty reports whether the graph has no nodes.
func (g *InteractionGraph) IsEmpty() bool { return len(g.Nodes) == 0 }

// GraphStats summarises the structure of an InteractionGraph.
// All fields are zero for an empty graph.
type GraphStats struct {
	// Nodes and Edges are the basic counts.
	Nodes int
	Edges int

	// Density is 2E / (N(N-1)) for an undirected simple graph,
	// 0 when fewer than two nodes exist.
	Density float64

	// ConnectedComponents is the number of connected components.
	ConnectedComponents int

	// AvgClustering is the average clustering coefficient over all
	// nodes, counting nodes of degree below two as zero. A bipartite
	// graph has no triangles, so this is zero by construction, but it
	// is computed rather than assumed.
	AvgClustering float64
}
