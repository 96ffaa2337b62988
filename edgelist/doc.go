// Package edgelist implements the mutable edge-list graph representation:
// cheap to construct, deliberately inconvenient to navigate.
//
// A Graph is two append-only sequences - nodes and edges in insertion
// order - so AddNode and AddEdge are O(1) amortized and the insertion
// index is the id. The representation satisfies core.Graph and
// core.MutableGraph but not core.ForwardNavigableGraph: enumerating a
// node's out-edges would take a scan of every edge, and the type does
// not hide that cost behind a navigation method. Convert to an
// adjarray.Array when navigation is needed.
//
// AddEdge validates both endpoints against the current node count and
// reports a missing endpoint via core.ErrStartNodeNotFound or
// core.ErrEndNodeNotFound without mutating the graph. Accessors panic
// on invalid ids.
//
// Complexity:
//
//   - AddNode / AddEdge:    O(1) amortized
//   - accessors by id:      O(1)
//   - NodeIDs / EdgeIDs:    O(1) to produce, O(len) to consume
package edgelist
