package adjarray

import (
	"github.com/graphrep/graphrep/core"
)

// FromGraph builds a compressed adjacency array from any core.Graph.
//
// The conversion is a stable counting sort of the source's edges keyed by
// start node:
//
//  1. count pass: counts[start+2]++ for every edge, so counts[i+2] holds
//     the out-degree of node i (the two extra slots absorb the index
//     shift the next steps rely on);
//  2. prefix-sum pass: replace counts with its running sum in place,
//     after which counts[i+1] is the first edge slot reserved for node i
//     and doubles as node i's write cursor;
//  3. scatter pass: visit edges in ascending edge-id order and write each
//     through its start node's cursor. Cursors only ever grow, so edges
//     sharing a start node land in insertion order;
//  4. drop the trailing slot, leaving firstOut of length NodeLen+1 with
//     firstOut[0] = 0 and firstOut[NodeLen] = EdgeLen.
//
// Node and edge ids are preserved exactly; ids obtained from the source
// denote the same nodes and edges in the result. Payloads are copied, so
// the result does not alias or reference the source.
//
// Panics if the source's node or edge count does not fit the id space.
//
// Complexity: O(NodeLen + EdgeLen) time and space.
func FromGraph[N, E any](src core.Graph[N, E]) *Array[N, E] {
	nodeLen := src.NodeLen()
	edgeLen := src.EdgeLen()
	if uint64(nodeLen) >= uint64(core.InvalidNodeID) {
		panic("adjarray: node count does not fit the id space")
	}
	if uint64(edgeLen) >= uint64(core.InvalidEdgeID) {
		panic("adjarray: edge count does not fit the id space")
	}

	counts := make([]core.EdgeID, nodeLen+2)
	for id := range src.EdgeIDs() {
		counts[src.EdgeStart(id)+2]++
	}

	// In-place running sum. counts[0] and counts[1] stay 0, the last
	// slot becomes edgeLen.
	var sum core.EdgeID
	for i, c := range counts {
		counts[i] += sum
		sum += c
	}

	edgeEnds := make([]core.NodeID, edgeLen)
	edgeData := make([]E, edgeLen)
	for id := range src.EdgeIDs() {
		e := src.Edge(id)
		slot := counts[e.Start+1]
		edgeEnds[slot] = e.End
		edgeData[slot] = *e.Data
		counts[e.Start+1]++
	}

	nodeData := make([]N, nodeLen)
	for id := range src.NodeIDs() {
		nodeData[id] = *src.NodeData(id)
	}

	return &Array[N, E]{
		firstOut: counts[:nodeLen+1],
		edgeEnds: edgeEnds,
		nodeData: nodeData,
		edgeData: edgeData,
	}
}
