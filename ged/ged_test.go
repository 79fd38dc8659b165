package ged_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evpinheiro/goged/ged"
)

// cycle(6) transformed into wheel(7) by inserting a hub node plus its six
// spoke edges: distance 1 (node insertion) + 6 (edge insertions) = 7.
func TestGraphEditDistanceCycleToWheel(t *testing.T) {
	g1 := cycleGraph(6)
	g2 := wheelGraph(7)

	cost, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, ged.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7.0, cost)
}

func TestGraphEditDistanceIdenticalPathsIsZero(t *testing.T) {
	g1 := pathGraph(4)
	g2 := pathGraph(4)

	cost, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, ged.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, cost)
}

// K3 vs K3 minus one edge: a single edge deletion suffices, and by the
// triangle's symmetry any of its three edges serves equally well.
func TestOptimalEditPathsTriangleMinusEdge(t *testing.T) {
	g1 := completeGraph(3)
	g2 := completeGraph(3)
	edges := g2.Edges()
	removed := edges[0]
	g2 = ged.NewSimpleGraph(false)
	g2.AddNode(0, nil)
	g2.AddNode(1, nil)
	g2.AddNode(2, nil)
	for _, e := range edges {
		if e == removed {
			continue
		}
		g2.AddEdge(e.U, e.V, nil)
	}

	paths, cost, err := ged.OptimalEditPaths(context.Background(), g1, g2, ged.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
	// The triangle's symmetry means more than one vertex bijection attains
	// this minimum; each returned path maps all three vertices.
	assert.Greater(t, len(paths), 1)
	for _, p := range paths {
		assert.Len(t, p.VertexPath, 3)
	}
}

func TestGraphEditDistanceEmptyVsSingleNode(t *testing.T) {
	g1 := ged.NewSimpleGraph(false)
	g2 := ged.NewSimpleGraph(false)
	g2.AddNode(0, nil)

	cost, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, ged.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.0, cost)
}

func TestGraphEditDistanceWithCustomNodeMatch(t *testing.T) {
	g1 := ged.NewSimpleGraph(false)
	g1.AddNode(0, ged.Attrs{"color": "red"})
	g1.AddNode(1, ged.Attrs{"color": "blue"})
	g1.AddNode(2, ged.Attrs{"color": "red"})
	g1.AddEdge(0, 1, nil)
	g1.AddEdge(1, 2, nil)

	g2 := ged.NewSimpleGraph(false)
	g2.AddNode(0, ged.Attrs{"color": "red"})
	g2.AddNode(1, ged.Attrs{"color": "red"})
	g2.AddNode(2, ged.Attrs{"color": "red"})
	g2.AddEdge(0, 1, nil)
	g2.AddEdge(1, 2, nil)

	opts := ged.Options{
		NodeMatch: func(a, b ged.Attrs) bool {
			ca, _ := a.Get("color")
			cb, _ := b.Get("color")
			return ca == cb
		},
	}

	cost, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, opts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.0, cost)
}

func TestGraphEditDistanceUpperBoundExcludesPaths(t *testing.T) {
	g1 := pathGraph(3)
	g2 := wheelGraph(5)

	zero := 0.0
	_, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, ged.Options{UpperBound: &zero})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOptimizeGraphEditDistanceYieldsNonIncreasingThenStops(t *testing.T) {
	g1 := pathGraph(3)
	g2 := wheelGraph(5)

	seq, err := ged.OptimizeGraphEditDistance(context.Background(), g1, g2, ged.Options{})
	require.NoError(t, err)

	var last float64
	first := true
	seq(func(cost float64) bool {
		if !first {
			assert.LessOrEqual(t, cost, last)
		}
		last, first = cost, false
		return true
	})
	assert.False(t, first, "expected at least one yield")
}

func TestGraphEditDistanceRejectsMismatchedDirectedness(t *testing.T) {
	g1 := ged.NewSimpleGraph(false)
	g2 := ged.NewSimpleGraph(true)

	_, _, err := ged.GraphEditDistance(context.Background(), g1, g2, ged.Options{})
	assert.Error(t, err)
}

func TestGraphEditDistanceRespectsContextCancellation(t *testing.T) {
	g1 := wheelGraph(6)
	g2 := wheelGraph(7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq, err := ged.OptimizeEditPaths(ctx, g1, g2, ged.Options{}, true)
	require.NoError(t, err)

	calls := 0
	seq(func(ged.Result) bool {
		calls++
		return true
	})
	assert.Zero(t, calls)
}

func TestGraphEditDistanceDirectedCycleAgainstItselfIsZero(t *testing.T) {
	g := directedCycleGraph(4)

	cost, ok, err := ged.GraphEditDistance(context.Background(), g, g, ged.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, cost)
}

// An out-star (hub with two outgoing edges) and an in-star (hub with two
// incoming edges) have the same degree-sequence shape up to reversal but
// are not isomorphic as directed graphs: no relabeling turns a common
// edge source into a common edge target. At most one of the two edges
// can ever line up, so the minimum edit deletes the other from g1 and
// inserts its counterpart into g2.
func TestGraphEditDistanceDirectedOrientationMatters(t *testing.T) {
	g1 := ged.NewSimpleGraph(true)
	g1.AddNode(0, nil)
	g1.AddNode(1, nil)
	g1.AddNode(2, nil)
	g1.AddEdge(0, 1, nil)
	g1.AddEdge(0, 2, nil)

	g2 := ged.NewSimpleGraph(true)
	g2.AddNode(0, nil)
	g2.AddNode(1, nil)
	g2.AddNode(2, nil)
	g2.AddEdge(1, 0, nil)
	g2.AddEdge(2, 0, nil)

	cost, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, ged.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2.0, cost)
}

func TestGraphEditDistanceWithLabelSequenceCost(t *testing.T) {
	g1 := ged.NewSimpleGraph(false)
	g1.AddNode(0, ged.Attrs{"labels": []any{"a", "b", "c"}})
	g1.AddNode(1, nil)
	g1.AddEdge(0, 1, nil)

	g2 := ged.NewSimpleGraph(false)
	g2.AddNode(0, ged.Attrs{"labels": []any{"a", "x", "c"}})
	g2.AddNode(1, nil)
	g2.AddEdge(0, 1, nil)

	opts := ged.Options{NodeSubstCost: ged.LabelSequenceCost("labels")}

	cost, ok, err := ged.GraphEditDistance(context.Background(), g1, g2, opts)
	require.NoError(t, err)
	require.True(t, ok)
	// Node 1 carries no "labels" attribute on either side (empty vs.
	// empty sequence, cost 0); node 0's label sequences differ by one
	// substituted element, so LabelSequenceCost must contribute exactly 1.
	assert.Equal(t, 1.0, cost)
}
