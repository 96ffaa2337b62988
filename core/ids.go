// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// NodeID identifies a node within a single graph representation.
// Ids are dense: a representation holding n nodes uses ids 0..n-1.
// The ordering of NodeID values is the ordering of the underlying integers.
type NodeID uint32

// EdgeID identifies an edge within a single graph representation.
// Ids are dense: a representation holding m edges uses ids 0..m-1.
// The ordering of EdgeID values is the ordering of the underlying integers.
type EdgeID uint32

const (
	// InvalidNodeID is the reserved sentinel; no valid node ever carries it.
	InvalidNodeID NodeID = math.MaxUint32

	// InvalidEdgeID is the reserved sentinel; no valid edge ever carries it.
	InvalidEdgeID EdgeID = math.MaxUint32
)

// NewNodeID wraps a raw value as a NodeID.
// Panics if the value is the invalid sentinel.
func NewNodeID(v uint32) NodeID {
	id := NodeID(v)
	if !id.Valid() {
		panic("core: node id out of bounds")
	}
	return id
}

// NewEdgeID wraps a raw value as an EdgeID.
// Panics if the value is the invalid sentinel.
func NewEdgeID(v uint32) EdgeID {
	id := EdgeID(v)
	if !id.Valid() {
		panic("core: edge id out of bounds")
	}
	return id
}

// NodeIDFromIndex converts a collection index to a NodeID.
// Panics if the index is negative or does not fit the id space.
func NodeIDFromIndex(i int) NodeID {
	if i < 0 || uint64(i) >= uint64(InvalidNodeID) {
		panic("core: node id out of bounds")
	}
	return NodeID(i)
}

// EdgeIDFromIndex converts a collection index to an EdgeID.
// Panics if the index is negative or does not fit the id space.
func EdgeIDFromIndex(i int) EdgeID {
	if i < 0 || uint64(i) >= uint64(InvalidEdgeID) {
		panic("core: edge id out of bounds")
	}
	return EdgeID(i)
}

// Valid reports whether the id is not the invalid sentinel.
// It does not know about any particular graph; representations
// additionally bound-check ids against their current length.
func (id NodeID) Valid() bool { return id != InvalidNodeID }

// Valid reports whether the id is not the invalid sentinel.
// It does not know about any particular graph; representations
// additionally bound-check ids against their current length.
func (id EdgeID) Valid() bool { return id != InvalidEdgeID }

// Index converts the id to a host int for slice indexing.
// Panics if the value does not fit in an int.
func (id NodeID) Index() int {
	if uint64(id) > uint64(math.MaxInt) {
		panic("core: node id does not fit int")
	}
	return int(id)
}

// Index converts the id to a host int for slice indexing.
// Panics if the value does not fit in an int.
func (id EdgeID) Index() int {
	if uint64(id) > uint64(math.MaxInt) {
		panic("core: edge id does not fit int")
	}
	return int(id)
}

// String formats the id as N<value>, e.g. N17.
func (id NodeID) String() string { return fmt.Sprintf("N%d", uint32(id)) }

// String formats the id as E<value>, e.g. E4.
func (id EdgeID) String() string { return fmt.Sprintf("E%d", uint32(id)) }
