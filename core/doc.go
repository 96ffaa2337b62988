// SPDX-License-Identifier: MIT

// Package core defines the identifier system, the plain data holders, and
// the capability interfaces shared by every graph representation in this
// module.
//
// What:
//
//   - NodeID / EdgeID: validated uint32 handles. The maximum value is
//     reserved as the invalid sentinel and is never produced by normal
//     construction. Handles are plain integers at runtime, so there is no
//     type-level tie between a handle and the graph instance it came
//     from; representations re-validate every handle on access via
//     IsNodeIDValid / IsEdgeIDValid before indexing.
//   - Node / Edge / EdgeRef: payload holders. Node and Edge own their
//     payload; EdgeRef is a non-owning read-only projection whose Data
//     field points into the storage of the representation it was
//     obtained from.
//   - Graph: the base capability every representation provides - counts,
//     restartable lazy id sequences, payload and endpoint lookup,
//     validity predicates.
//   - ForwardNavigableGraph / BackwardNavigableGraph: navigation
//     capabilities. Out-edge (resp. in-edge) enumeration in time
//     proportional to the node's degree, not the whole graph.
//   - MutableGraph: incremental construction via AddNode / AddEdge.
//
// Each concrete representation declares the capabilities it supports by
// implementing the matching interfaces; algorithms are written against
// the interfaces and stay independent of the concrete layout.
//
// Errors:
//
//	ErrStartNodeNotFound - AddEdge referenced a start node that does not exist.
//	ErrEndNodeNotFound   - AddEdge referenced an end node that does not exist.
//
// Passing an invalid handle to an accessor is a programming error and
// panics; adding an edge between not-yet-created nodes is an expected
// caller mistake and is reported through the sentinel errors above.
package core
