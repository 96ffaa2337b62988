package edgelist

import (
	"fmt"
	"iter"

	"github.com/graphrep/graphrep/core"
)

// NodeLen returns the number of nodes in the graph.
func (g *Graph[N, E]) NodeLen() int { return len(g.nodes) }

// EdgeLen returns the number of edges in the graph.
func (g *Graph[N, E]) EdgeLen() int { return len(g.edges) }

// NodeIDs returns a restartable sequence over all node ids, ascending.
func (g *Graph[N, E]) NodeIDs() iter.Seq[core.NodeID] {
	return core.NodeIDRange(0, core.NodeID(len(g.nodes)))
}

// EdgeIDs returns a restartable sequence over all edge ids, ascending.
func (g *Graph[N, E]) EdgeIDs() iter.Seq[core.EdgeID] {
	return core.EdgeIDRange(0, core.EdgeID(len(g.edges)))
}

// NodeData returns a pointer to the payload of the given node.
// Panics if id is not a node of this graph.
func (g *Graph[N, E]) NodeData(id core.NodeID) *N {
	g.mustNodeID(id)
	return &g.nodes[id].Data
}

// EdgeData returns a pointer to the payload of the given edge.
// Panics if id is not an edge of this graph.
func (g *Graph[N, E]) EdgeData(id core.EdgeID) *E {
	g.mustEdgeID(id)
	return &g.edges[id].Data
}

// Edge returns a full view of the given edge.
// Panics if id is not an edge of this graph.
func (g *Graph[N, E]) Edge(id core.EdgeID) core.EdgeRef[E] {
	g.mustEdgeID(id)
	e := &g.edges[id]
	return core.NewEdgeRef(e.Start, e.End, &e.Data)
}

// EdgeStart returns the id of the node the given edge leaves.
// Panics if id is not an edge of this graph.
func (g *Graph[N, E]) EdgeStart(id core.EdgeID) core.NodeID {
	g.mustEdgeID(id)
	return g.edges[id].Start
}

// EdgeEnd returns the id of the node the given edge enters.
// Panics if id is not an edge of this graph.
func (g *Graph[N, E]) EdgeEnd(id core.EdgeID) core.NodeID {
	g.mustEdgeID(id)
	return g.edges[id].End
}

// IsNodeIDValid reports whether id denotes a node of this graph.
func (g *Graph[N, E]) IsNodeIDValid(id core.NodeID) bool {
	return id.Valid() && uint64(id) < uint64(len(g.nodes))
}

// IsEdgeIDValid reports whether id denotes an edge of this graph.
func (g *Graph[N, E]) IsEdgeIDValid(id core.EdgeID) bool {
	return id.Valid() && uint64(id) < uint64(len(g.edges))
}

func (g *Graph[N, E]) mustNodeID(id core.NodeID) {
	if !g.IsNodeIDValid(id) {
		panic(fmt.Sprintf("edgelist: invalid node id %v", id))
	}
}

func (g *Graph[N, E]) mustEdgeID(id core.EdgeID) {
	if !g.IsEdgeIDValid(id) {
		panic(fmt.Sprintf("edgelist: invalid edge id %v", id))
	}
}
