package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtrix-labs/pagegraph/graph"
)

func TestGraph_AddNodeThenGetRoundTripsAttrs(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddNode("A", map[string]interface{}{"color": "red"}))

	view, err := g.GetNode("A")
	require.NoError(t, err)
	require.Equal(t, "A", view.Name)

	color, err := view.Attr("color")
	require.NoError(t, err)
	require.Equal(t, "red", color)

	_, err = view.Attr("missing")
	require.ErrorIs(t, err, graph.ErrAttributeMissing)
}

func TestGraph_AddNodeTwiceIsRejected(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddNode("A", nil))
	require.ErrorIs(t, g.AddNode("A", nil), graph.ErrNodeExists)
}

func TestGraph_AddEdgeAutoCreatesEndpoints(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1.5, nil))
	require.True(t, g.Contains("A"))
	require.True(t, g.Contains("B"))

	view, err := g.GetEdge("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.5, view.Weight)
}

// TestGraph_AddEdgeTwiceIsRejected exercises S3: a second AddEdge between
// the same ordered pair is rejected, and the graph's edge count is
// unchanged by the rejected call.
func TestGraph_AddEdgeTwiceIsRejected(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1.0, nil))
	require.Equal(t, 1, g.NumEdges())

	err := g.AddEdge("A", "B", 9.0, nil)
	require.ErrorIs(t, err, graph.ErrEdgeExists)
	require.Equal(t, 1, g.NumEdges())

	view, err := g.GetEdge("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, view.Weight, "rejected AddEdge must not overwrite the existing weight")
}

// TestGraph_RemoveNodeCascadesEdgesAndNodeList exercises S4: building
// A->B->C, removing B leaves node list [A, C] and an empty edge list.
func TestGraph_RemoveNodeCascadesEdgesAndNodeList(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1.0, nil))
	require.NoError(t, g.AddEdge("B", "C", 1.0, nil))

	require.NoError(t, g.RemoveNode("B"))

	require.Equal(t, []string{"A", "C"}, g.NodeList())
	require.Empty(t, g.EdgeList())
	require.False(t, g.Contains("B"))
}

func TestGraph_RemoveNodeDropsIncidentEdgeAttrs(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1.0, map[string]interface{}{"label": "ab"}))
	require.NoError(t, g.RemoveNode("B"))

	_, err := g.GetEdge("A", "B")
	require.ErrorIs(t, err, graph.ErrEdgeMissing)
}

func TestGraph_UpdateEdgeReplacesWeightAndAttrs(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1.0, map[string]interface{}{"label": "old"}))
	require.NoError(t, g.UpdateEdge("A", "B", 2.0, map[string]interface{}{"label": "new"}))

	view, err := g.GetEdge("A", "B")
	require.NoError(t, err)
	require.Equal(t, 2.0, view.Weight)
	label, err := view.Attr("label")
	require.NoError(t, err)
	require.Equal(t, "new", label)
}

func TestGraph_RemoveEdgeMissingIsError(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddNode("A", nil))
	require.NoError(t, g.AddNode("B", nil))
	require.ErrorIs(t, g.RemoveEdge("A", "B"), graph.ErrEdgeMissing)
}

func TestGraph_AddEdgesFromCoercesIntegerWeight(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdgesFrom([]graph.EdgeSpec{
		{Src: "A", Dst: "B", Weight: 3},
		{Src: "B", Dst: "C", Weight: nil},
	}))

	view, err := g.GetEdge("A", "B")
	require.NoError(t, err)
	require.Equal(t, 3.0, view.Weight)

	view, err = g.GetEdge("B", "C")
	require.NoError(t, err)
	require.Equal(t, 0.0, view.Weight)
}

func TestGraph_EdgeListSortedLexicographically(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("B", "C", 1, nil))
	require.NoError(t, g.AddEdge("A", "B", 1, nil))

	require.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, g.EdgeList())
}

func TestGraph_CompactNodeArrayPreservesNamesAfterRemoval(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddNode("A", nil))
	require.NoError(t, g.AddNode("B", nil))
	require.NoError(t, g.AddNode("C", nil))
	require.NoError(t, g.RemoveNode("B"))

	g.CompactNodeArray()

	require.Equal(t, []string{"A", "C"}, g.NodeList())
	require.True(t, g.Contains("A"))
	require.True(t, g.Contains("C"))
}

func TestGraph_ClearResetsEverything(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1, map[string]interface{}{"x": 1}))
	g.Clear()

	require.Equal(t, 0, g.NumNodes())
	require.Equal(t, 0, g.NumEdges())
	require.Empty(t, g.NodeList())
	require.Empty(t, g.EdgeList())
}

// TestGraph_RunPageRankUniformThreeCycle exercises S1: a symmetric
// three-cycle converges to equal scores for every node.
func TestGraph_RunPageRankUniformThreeCycle(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1, nil))
	require.NoError(t, g.AddEdge("B", "C", 1, nil))
	require.NoError(t, g.AddEdge("C", "A", 1, nil))

	scores, err := g.RunPageRank()
	require.NoError(t, err)
	require.Len(t, scores, 3)
	require.InDelta(t, scores["A"], scores["B"], 1e-6)
	require.InDelta(t, scores["B"], scores["C"], 1e-6)
}

func TestGraph_RunPageRankZeroAlphaReturnsPersonalizationExactly(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1, nil))
	require.NoError(t, g.AddEdge("B", "C", 1, nil))
	require.NoError(t, g.AddEdge("C", "A", 1, nil))

	scores, err := g.RunPageRank(
		graph.WithAlpha(0),
		graph.WithPersonalization(map[string]float64{"A": 1}),
	)
	require.NoError(t, err)
	require.Equal(t, 1.0, scores["A"])
	require.Equal(t, 0.0, scores["B"])
	require.Equal(t, 0.0, scores["C"])
}

func TestGraph_RunPageRankRejectsZeroSumDistribution(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddNode("A", nil))
	require.NoError(t, g.AddNode("B", nil))

	_, err := g.RunPageRank(graph.WithPersonalization(map[string]float64{}))
	require.ErrorIs(t, err, graph.ErrInvalidInput)
}

func TestGraph_RunPageRankOnEmptyGraphReturnsEmptyMap(t *testing.T) {
	g := graph.New(0)
	scores, err := g.RunPageRank()
	require.NoError(t, err)
	require.Empty(t, scores)
}

func TestGraph_RunPageRankUnknownPersonalizationNameIsIgnored(t *testing.T) {
	g := graph.New(0)
	require.NoError(t, g.AddEdge("A", "B", 1, nil))

	scores, err := g.RunPageRank(graph.WithPersonalization(map[string]float64{
		"A":          1,
		"not-a-node": 5,
	}))
	require.NoError(t, err)
	require.Len(t, scores, 2)
}
