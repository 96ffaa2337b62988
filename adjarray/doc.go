// Package adjarray implements the compressed adjacency-array graph
// representation and the conversion that builds it from any core.Graph.
//
// An Array stores a graph in four parallel slices:
//
//	firstOut - len NodeLen+1, non-decreasing; firstOut[i]..firstOut[i+1]
//	           is the half-open range of ids of the edges leaving node i
//	edgeEnds - len EdgeLen; the end node of each edge, indexed by edge id
//	nodeData - node payloads, indexed by node id
//	edgeData - edge payloads, indexed by edge id
//
// The central invariant: for an edge id e with
// firstOut[i] <= e < firstOut[i+1], the edge's start node is i. FromGraph
// establishes it with a stable counting sort of the source's edges keyed
// by start node - one counting pass, one in-place prefix-sum pass, one
// scatter pass, each O(EdgeLen) or O(NodeLen).
//
// Conversion preserves ids exactly: node and edge ids obtained while
// building the source remain valid against the resulting Array and
// denote the same nodes and edges. Edges sharing a start node keep their
// relative insertion order. Payloads are copied, so the Array's lifetime
// is independent of the source it was built from.
//
// An Array satisfies core.Graph and core.ForwardNavigableGraph and is
// immutable after construction, which makes it safe for any number of
// concurrent readers without synchronization.
//
// Complexity:
//
//   - FromGraph:   O(NodeLen + EdgeLen)
//   - OutEdges:    O(1) to produce, O(out-degree) to consume
//   - EdgeStart:   O(log NodeLen)
//   - other accessors: O(1)
package adjarray
