package adjarray_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphrep/graphrep/adjarray"
	"github.com/graphrep/graphrep/core"
)

// Out-edges of node 1 in the navigation fixture must be the edges with
// payloads 2, 3, 4 in that order - their insertion order among edges
// starting at node 1.
func TestArray_Navigation(t *testing.T) {
	g := buildNavGraph(t)
	arr := adjarray.FromGraph[rune, int](g)

	n0 := core.NewNodeID(0)
	n1 := core.NewNodeID(1)
	n2 := core.NewNodeID(2)
	n4 := core.NewNodeID(4)

	var got []core.EdgeRef[int]
	for id := range arr.OutEdges(n1) {
		got = append(got, arr.Edge(id))
	}

	want := []core.EdgeRef[int]{
		core.NewEdgeRef(n1, n0, ptr(2)),
		core.NewEdgeRef(n1, n4, ptr(3)),
		core.NewEdgeRef(n1, n2, ptr(4)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("out-edges of N1 mismatch (-want +got):\n%s", diff)
	}
}

// The binary search behind EdgeStart must agree with the out-edge ranges
// for every id in every bucket, including bucket boundaries.
func TestArray_EdgeStartMatchesScan(t *testing.T) {
	g := buildRandomGraph(t, 25, 120)
	arr := adjarray.FromGraph[int, int](g)

	for n := range arr.NodeIDs() {
		for e := range arr.OutEdges(n) {
			assert.Equal(t, n, arr.EdgeStart(e), "edge %v must start at %v", e, n)
		}
	}
}

func TestArray_Accessors(t *testing.T) {
	g := buildNavGraph(t)
	arr := adjarray.FromGraph[rune, int](g)

	require.Equal(t, 5, arr.NodeLen())
	require.Equal(t, 6, arr.EdgeLen())

	assert.Equal(t, 'a', *arr.NodeData(core.NewNodeID(0)))
	assert.Equal(t, 'e', *arr.NodeData(core.NewNodeID(4)))

	e2 := core.NewEdgeID(2) // (2,3,5) in insertion order
	assert.Equal(t, core.NewNodeID(2), arr.EdgeStart(e2))
	assert.Equal(t, core.NewNodeID(3), arr.EdgeEnd(e2))
	assert.Equal(t, 5, *arr.EdgeData(e2))

	ref := arr.Edge(e2)
	assert.Equal(t, arr.EdgeStart(e2), ref.Start)
	assert.Equal(t, arr.EdgeEnd(e2), ref.End)
	assert.Same(t, arr.EdgeData(e2), ref.Data, "Edge must project the stored payload, not a copy")
}

func TestArray_IDValidity(t *testing.T) {
	g := buildNavGraph(t)
	arr := adjarray.FromGraph[rune, int](g)

	assert.True(t, arr.IsNodeIDValid(core.NewNodeID(4)))
	assert.False(t, arr.IsNodeIDValid(core.NewNodeID(5)), "id at NodeLen is out of range")
	assert.False(t, arr.IsNodeIDValid(core.InvalidNodeID))

	assert.True(t, arr.IsEdgeIDValid(core.NewEdgeID(5)))
	assert.False(t, arr.IsEdgeIDValid(core.NewEdgeID(6)))
	assert.False(t, arr.IsEdgeIDValid(core.InvalidEdgeID))
}

// Accessors must fail loudly on invalid ids; returning stale or garbage
// data would silently corrupt callers.
func TestArray_InvalidIDAccessPanics(t *testing.T) {
	g := buildNavGraph(t)
	arr := adjarray.FromGraph[rune, int](g)

	assert.Panics(t, func() { arr.NodeData(core.NewNodeID(5)) })
	assert.Panics(t, func() { arr.NodeData(core.InvalidNodeID) })
	assert.Panics(t, func() { arr.EdgeData(core.NewEdgeID(6)) })
	assert.Panics(t, func() { arr.Edge(core.InvalidEdgeID) })
	assert.Panics(t, func() { arr.EdgeStart(core.NewEdgeID(100)) })
	assert.Panics(t, func() { arr.EdgeEnd(core.NewEdgeID(100)) })
	assert.Panics(t, func() { arr.OutEdges(core.NewNodeID(5)) })
	assert.Panics(t, func() { arr.OutEdges(core.InvalidNodeID) })
}

// OutEdges sequences are restartable like every other id sequence.
func TestArray_OutEdgesRestartable(t *testing.T) {
	g := buildNavGraph(t)
	arr := adjarray.FromGraph[rune, int](g)

	seq := arr.OutEdges(core.NewNodeID(1))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, second, 3)
}

// A converted array can be handed to code that only knows the capability
// interfaces.
func TestArray_SatisfiesForwardNavigable(t *testing.T) {
	g := buildNavGraph(t)

	var fg core.ForwardNavigableGraph[rune, int] = adjarray.FromGraph[rune, int](g)

	total := 0
	for n := range fg.NodeIDs() {
		total += len(slices.Collect(fg.OutEdges(n)))
	}
	assert.Equal(t, fg.EdgeLen(), total, "every edge belongs to exactly one out-edge range")
}
