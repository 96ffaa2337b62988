package adjarray

import (
	"fmt"
	"iter"
	"sort"

	"github.com/graphrep/graphrep/core"
)

// Array is a compressed adjacency-array graph. Build one with FromGraph;
// it is immutable afterwards.
//
// N is the node payload type, E the edge payload type.
type Array[N, E any] struct {
	firstOut []core.EdgeID
	edgeEnds []core.NodeID
	nodeData []N
	edgeData []E
}

// Capability declarations.
var (
	_ core.Graph[int, int]                 = (*Array[int, int])(nil)
	_ core.ForwardNavigableGraph[int, int] = (*Array[int, int])(nil)
)

// NodeLen returns the number of nodes in the graph.
func (a *Array[N, E]) NodeLen() int { return len(a.firstOut) - 1 }

// EdgeLen returns the number of edges in the graph.
func (a *Array[N, E]) EdgeLen() int { return len(a.edgeEnds) }

// NodeIDs returns a restartable sequence over all node ids, ascending.
func (a *Array[N, E]) NodeIDs() iter.Seq[core.NodeID] {
	return core.NodeIDRange(0, core.NodeID(a.NodeLen()))
}

// EdgeIDs returns a restartable sequence over all edge ids, ascending.
func (a *Array[N, E]) EdgeIDs() iter.Seq[core.EdgeID] {
	return core.EdgeIDRange(0, core.EdgeID(a.EdgeLen()))
}

// NodeData returns a pointer to the payload of the given node.
// Panics if id is not a node of this graph.
func (a *Array[N, E]) NodeData(id core.NodeID) *N {
	a.mustNodeID(id)
	return &a.nodeData[id]
}

// EdgeData returns a pointer to the payload of the given edge.
// Panics if id is not an edge of this graph.
func (a *Array[N, E]) EdgeData(id core.EdgeID) *E {
	a.mustEdgeID(id)
	return &a.edgeData[id]
}

// Edge returns a full view of the given edge. The start node is
// recovered from firstOut, so this costs O(log NodeLen).
// Panics if id is not an edge of this graph.
func (a *Array[N, E]) Edge(id core.EdgeID) core.EdgeRef[E] {
	a.mustEdgeID(id)
	return core.NewEdgeRef(a.EdgeStart(id), a.edgeEnds[id], &a.edgeData[id])
}

// EdgeStart returns the id of the node the given edge leaves.
//
// firstOut is non-decreasing and partitions [0, EdgeLen) into contiguous
// per-node ranges, so the start node is one before the first offset
// strictly greater than id.
//
// Complexity: O(log NodeLen).
// Panics if id is not an edge of this graph.
func (a *Array[N, E]) EdgeStart(id core.EdgeID) core.NodeID {
	a.mustEdgeID(id)
	i := sort.Search(len(a.firstOut), func(i int) bool { return a.firstOut[i] > id })
	return core.NodeID(i - 1)
}

// EdgeEnd returns the id of the node the given edge enters.
// Panics if id is not an edge of this graph.
func (a *Array[N, E]) EdgeEnd(id core.EdgeID) core.NodeID {
	a.mustEdgeID(id)
	return a.edgeEnds[id]
}

// OutEdges returns a sequence of the ids of the edges leaving the given
// node, in the order the edges were added to the source graph.
//
// Complexity: O(1) to produce, O(out-degree) to consume.
// Panics if id is not a node of this graph.
func (a *Array[N, E]) OutEdges(id core.NodeID) iter.Seq[core.EdgeID] {
	a.mustNodeID(id)
	return core.EdgeIDRange(a.firstOut[id], a.firstOut[id+1])
}

// IsNodeIDValid reports whether id denotes a node of this graph.
func (a *Array[N, E]) IsNodeIDValid(id core.NodeID) bool {
	return id.Valid() && uint64(id) < uint64(a.NodeLen())
}

// IsEdgeIDValid reports whether id denotes an edge of this graph.
func (a *Array[N, E]) IsEdgeIDValid(id core.EdgeID) bool {
	return id.Valid() && uint64(id) < uint64(a.EdgeLen())
}

func (a *Array[N, E]) mustNodeID(id core.NodeID) {
	if !a.IsNodeIDValid(id) {
		panic(fmt.Sprintf("adjarray: invalid node id %v", id))
	}
}

func (a *Array[N, E]) mustEdgeID(id core.EdgeID) {
	if !a.IsEdgeIDValid(id) {
		panic(fmt.Sprintf("adjarray: invalid edge id %v", id))
	}
}
