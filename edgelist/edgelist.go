package edgelist

import (
	"github.com/graphrep/graphrep/core"
)

// Graph is an edge-list graph: nodes and edges stored in insertion order,
// with the insertion index as id. The zero value is ready to use; New is
// provided for symmetry with the other representations.
//
// N is the node payload type, E the edge payload type.
type Graph[N, E any] struct {
	nodes []core.Node[N]
	edges []core.Edge[E]
}

// Capability declarations.
var (
	_ core.Graph[int, int]        = (*Graph[int, int])(nil)
	_ core.MutableGraph[int, int] = (*Graph[int, int])(nil)
)

// New creates an empty edge-list graph.
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

// AddNode appends node and returns its assigned id, the previous node
// count. Panics if the graph has grown past the representable id range.
//
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(node core.Node[N]) core.NodeID {
	id := core.NodeIDFromIndex(len(g.nodes))
	g.nodes = append(g.nodes, node)
	return id
}

// AddEdge appends edge and returns its assigned id, the previous edge
// count. If an endpoint does not reference an existing node, AddEdge
// returns core.ErrStartNodeNotFound or core.ErrEndNodeNotFound and the
// graph is left exactly as it was. Panics if the graph has grown past
// the representable id range.
//
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(edge core.Edge[E]) (core.EdgeID, error) {
	if !g.IsNodeIDValid(edge.Start) {
		return core.InvalidEdgeID, core.ErrStartNodeNotFound
	}
	if !g.IsNodeIDValid(edge.End) {
		return core.InvalidEdgeID, core.ErrEndNodeNotFound
	}

	id := core.EdgeIDFromIndex(len(g.edges))
	g.edges = append(g.edges, edge)
	return id, nil
}
