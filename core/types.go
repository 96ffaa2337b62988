// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for graph mutation.
var (
	// ErrStartNodeNotFound indicates an edge referenced a start node that
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("core: edge start node does not exist")

	// ErrEndNodeNotFound indicates an edge referenced an end node that
	// does not exist in the graph.
	ErrEndNodeNotFound = errors.New("core: edge end node does not exist")
)

// Node is a container for a node payload.
// Use it to add nodes to a MutableGraph.
type Node[N any] struct {
	// Data is the payload carried by the node.
	Data N
}

// NewNode creates a node holding the given payload.
func NewNode[N any](data N) Node[N] {
	return Node[N]{Data: data}
}

// Edge is a container for an edge: its two endpoints and a payload.
// Use it to add edges to a MutableGraph.
type Edge[E any] struct {
	// Start is the id of the node the edge leaves.
	Start NodeID

	// End is the id of the node the edge enters.
	End NodeID

	// Data is the payload carried by the edge.
	Data E
}

// NewEdge creates an edge from start to end holding the given payload.
func NewEdge[E any](start, end NodeID, data E) Edge[E] {
	return Edge[E]{Start: start, End: end, Data: data}
}

// EdgeRef is a non-owning view of an edge, returned by Graph.Edge.
// Data points into the storage of the representation the view was
// obtained from and must not outlive it. EdgeRef is read-only by
// convention; it never owns the payload.
type EdgeRef[E any] struct {
	// Start is the id of the node the edge leaves.
	Start NodeID

	// End is the id of the node the edge enters.
	End NodeID

	// Data points at the payload inside the owning representation.
	Data *E
}

// NewEdgeRef creates an edge view from start to end over the given payload.
// Representations use it to project stored edges; tests use it to state
// expected values.
func NewEdgeRef[E any](start, end NodeID, data *E) EdgeRef[E] {
	return EdgeRef[E]{Start: start, End: end, Data: data}
}
