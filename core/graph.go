// SPDX-License-Identifier: MIT

package core

import "iter"

// Graph is the base capability every representation provides.
//
// A Graph is a container for nodes and edges with dense integer ids; it
// does not define navigation. Id sequences are lazy, finite, and
// restartable - ranging over them a second time yields the ids again
// from the start.
//
// Accessors taking an id panic if the id is invalid for this graph
// (sentinel, or at/beyond the current length). Callers holding ids of
// uncertain origin must check IsNodeIDValid / IsEdgeIDValid first.
type Graph[N, E any] interface {
	// NodeLen returns the number of nodes in the graph.
	NodeLen() int

	// EdgeLen returns the number of edges in the graph.
	EdgeLen() int

	// NodeIDs returns a sequence of all node ids, ascending from 0.
	NodeIDs() iter.Seq[NodeID]

	// EdgeIDs returns a sequence of all edge ids, ascending from 0.
	EdgeIDs() iter.Seq[EdgeID]

	// NodeData returns a pointer to the payload of the given node.
	NodeData(id NodeID) *N

	// EdgeData returns a pointer to the payload of the given edge.
	EdgeData(id EdgeID) *E

	// Edge returns a full view of the given edge: endpoints and payload.
	Edge(id EdgeID) EdgeRef[E]

	// EdgeStart returns the id of the node the given edge leaves.
	EdgeStart(id EdgeID) NodeID

	// EdgeEnd returns the id of the node the given edge enters.
	EdgeEnd(id EdgeID) NodeID

	// IsNodeIDValid reports whether id denotes a node of this graph.
	IsNodeIDValid(id NodeID) bool

	// IsEdgeIDValid reports whether id denotes an edge of this graph.
	IsEdgeIDValid(id EdgeID) bool
}

// ForwardNavigableGraph is a graph that can enumerate a node's out-edges
// in time proportional to the node's out-degree, not the whole graph.
// For undirected graphs, out-edges and in-edges coincide.
type ForwardNavigableGraph[N, E any] interface {
	Graph[N, E]

	// OutEdges returns a sequence of the ids of the edges leaving the
	// given node, O(1) to produce and O(out-degree) to consume.
	OutEdges(id NodeID) iter.Seq[EdgeID]
}

// BackwardNavigableGraph is a graph that can enumerate a node's in-edges
// in time proportional to the node's in-degree.
//
// No representation in this module implements it. Extending
// adjarray.Array to satisfy it takes a second offset array built by
// bucketing edges on their end node instead of their start node.
type BackwardNavigableGraph[N, E any] interface {
	Graph[N, E]

	// InEdges returns a sequence of the ids of the edges entering the
	// given node, O(1) to produce and O(in-degree) to consume.
	InEdges(id NodeID) iter.Seq[EdgeID]
}

// MutableGraph is a graph that supports cheap incremental construction.
type MutableGraph[N, E any] interface {
	// AddNode appends a node and returns its assigned id.
	AddNode(node Node[N]) NodeID

	// AddEdge appends an edge and returns its assigned id. If an endpoint
	// does not exist, it returns ErrStartNodeNotFound or
	// ErrEndNodeNotFound and leaves the graph unmodified.
	AddEdge(edge Edge[E]) (EdgeID, error)
}

// NodeIDRange returns a restartable sequence yielding begin, begin+1, ...
// up to but excluding end.
func NodeIDRange(begin, end NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for id := begin; id < end; id++ {
			if !yield(id) {
				return
			}
		}
	}
}

// EdgeIDRange returns a restartable sequence yielding begin, begin+1, ...
// up to but excluding end.
func EdgeIDRange(begin, end EdgeID) iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for id := begin; id < end; id++ {
			if !yield(id) {
				return
			}
		}
	}
}
