// Package graphrep provides complementary in-memory graph representations
// and a deterministic, order-preserving conversion between them.
//
// Two representations ship with the module:
//
//   - edgelist.Graph — cheap to build: O(1) amortized AddNode/AddEdge,
//     insertion order defines node and edge ids, no navigation support.
//   - adjarray.Array — cheap to use: a compressed adjacency array with
//     O(1) out-edge enumeration and O(log V) edge→start-node lookup,
//     immutable once built.
//
// The intended flow is to assemble a graph incrementally with
// edgelist.Graph, then convert it once via adjarray.FromGraph. Conversion
// preserves node and edge ids exactly and keeps the relative order of
// edges sharing a start node, so ids obtained during construction stay
// valid against the converted array.
//
// Capabilities are expressed as small interfaces in package core: every
// representation satisfies core.Graph, and each additionally declares
// what it supports — core.MutableGraph for edgelist.Graph,
// core.ForwardNavigableGraph for adjarray.Array. Algorithms written
// against these interfaces accept any representation carrying the
// capabilities they need, without knowing the concrete layout.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — NodeID/EdgeID handles, Node/Edge/EdgeRef holders,
//	            capability interfaces, sentinel errors
//	edgelist/ — mutable edge-list representation
//	adjarray/ — compressed adjacency-array representation + conversion
//
//	go get github.com/graphrep/graphrep
package graphrep
