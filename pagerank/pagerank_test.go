package pagerank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtrix-labs/pagegraph/core"
	"github.com/valtrix-labs/pagegraph/pagerank"
)

func uniform(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0 / float64(n)
	}
	return v
}

func TestRun_ThreeCycleUniformScores(t *testing.T) {
	s := core.NewStore(0)
	a, b, c := s.AddNode(), s.AddNode(), s.AddNode()
	require.NoError(t, s.AddEdge(a, b, 1))
	require.NoError(t, s.AddEdge(b, c, 1))
	require.NoError(t, s.AddEdge(c, a, 1))

	n := s.SlotCount()
	res, err := pagerank.Run(s, uniform(n), uniform(n), uniform(n), 0.85, 1000, 1e-9)
	require.NoError(t, err)
	require.True(t, res.Converged)
	for _, score := range res.Scores {
		require.InDelta(t, 1.0/3.0, score, 1e-6)
	}
}

func TestRun_StarInHubExceedsLeaves(t *testing.T) {
	s := core.NewStore(0)
	hub := s.AddNode()
	leaves := []int{s.AddNode(), s.AddNode(), s.AddNode()}
	for _, l := range leaves {
		require.NoError(t, s.AddEdge(l, hub, 1))
	}

	n := s.SlotCount()
	res, err := pagerank.Run(s, uniform(n), uniform(n), uniform(n), 0.85, 1000, 1e-9)
	require.NoError(t, err)

	for _, l := range leaves {
		require.Greater(t, res.Scores[hub], res.Scores[l])
	}
	require.InDelta(t, res.Scores[leaves[0]], res.Scores[leaves[1]], 1e-9)
	require.InDelta(t, res.Scores[leaves[1]], res.Scores[leaves[2]], 1e-9)
}

func TestRun_ConservesProbabilityMass(t *testing.T) {
	s := core.NewStore(0)
	a, b, c := s.AddNode(), s.AddNode(), s.AddNode()
	require.NoError(t, s.AddEdge(a, b, 1))
	require.NoError(t, s.AddEdge(b, c, 2))
	require.NoError(t, s.AddEdge(c, a, 1))
	require.NoError(t, s.AddEdge(a, c, 1))

	n := s.SlotCount()
	tol := 1e-8
	res, err := pagerank.Run(s, uniform(n), uniform(n), uniform(n), 0.85, 200, tol)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range res.Scores {
		sum += v
	}
	require.InDelta(t, 1.0, sum, 10*tol)
}

func TestRun_SingleSinkChainFavorsSink(t *testing.T) {
	s := core.NewStore(0)
	const chainLen = 6
	ids := make([]int, chainLen)
	for i := range ids {
		ids[i] = s.AddNode()
	}
	for i := 0; i < chainLen-1; i++ {
		require.NoError(t, s.AddEdge(ids[i], ids[i+1], 1))
	}
	// ids[chainLen-1] is the sole dangling node (sink).

	n := s.SlotCount()
	res, err := pagerank.Run(s, uniform(n), uniform(n), uniform(n), 0.85, 500, 1e-10)
	require.NoError(t, err)

	sink := res.Scores[ids[chainLen-1]]
	for i := 0; i < chainLen-1; i++ {
		require.Greater(t, sink, res.Scores[ids[i]])
	}
}

func TestRun_ZeroAlphaReturnsPersonalizationExactly(t *testing.T) {
	s := core.NewStore(0)
	a, b, c := s.AddNode(), s.AddNode(), s.AddNode()
	require.NoError(t, s.AddEdge(a, b, 1))
	require.NoError(t, s.AddEdge(b, c, 1))

	n := s.SlotCount()
	personalization := make([]float64, n)
	personalization[b] = 1.0

	res, err := pagerank.Run(s, uniform(n), personalization, personalization, 0, 10, 1e-12)
	require.NoError(t, err)
	require.Equal(t, personalization, res.Scores)
}

func TestRun_DoublingWeightsLeavesResultUnchanged(t *testing.T) {
	build := func(scale float64) *core.Store {
		s := core.NewStore(0)
		a, b, c := s.AddNode(), s.AddNode(), s.AddNode()
		_ = s.AddEdge(a, b, 1*scale)
		_ = s.AddEdge(b, c, 3*scale)
		_ = s.AddEdge(c, a, 2*scale)
		_ = s.AddEdge(a, c, 1*scale)
		return s
	}

	s1 := build(1)
	s2 := build(2)
	n := s1.SlotCount()

	r1, err := pagerank.Run(s1, uniform(n), uniform(n), uniform(n), 0.85, 500, 1e-12)
	require.NoError(t, err)
	r2, err := pagerank.Run(s2, uniform(n), uniform(n), uniform(n), 0.85, 500, 1e-12)
	require.NoError(t, err)

	for i := range r1.Scores {
		require.InDelta(t, r1.Scores[i], r2.Scores[i], 1e-9)
	}
}

func TestRun_DanglingIsolatedNodeReceivesTeleportFloor(t *testing.T) {
	s := core.NewStore(0)
	a, b, c, d := s.AddNode(), s.AddNode(), s.AddNode(), s.AddNode()
	require.NoError(t, s.AddEdge(a, b, 1))
	require.NoError(t, s.AddEdge(b, c, 1))
	require.NoError(t, s.AddEdge(c, a, 1))
	// d is isolated (dangling, no in/out edges).

	n := s.SlotCount()
	alpha := 0.85
	personalization := make([]float64, n)
	personalization[d] = 1.0

	res, err := pagerank.Run(s, uniform(n), personalization, personalization, alpha, 500, 1e-10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Scores[d], 1-alpha)
}

func TestRun_RejectsDimensionMismatch(t *testing.T) {
	s := core.NewStore(0)
	s.AddNode()
	s.AddNode()
	_, err := pagerank.Run(s, []float64{1}, []float64{1}, []float64{1}, 0.85, 10, 1e-6)
	require.ErrorIs(t, err, pagerank.ErrDimensionMismatch)
}

func TestRun_RejectsAlphaOutOfRange(t *testing.T) {
	s := core.NewStore(0)
	s.AddNode()
	_, err := pagerank.Run(s, []float64{1}, []float64{1}, []float64{1}, 1.5, 10, 1e-6)
	require.ErrorIs(t, err, pagerank.ErrInvalidAlpha)
}

func TestRun_StopsAtMaxIterWithoutError(t *testing.T) {
	s := core.NewStore(0)
	a, b, c := s.AddNode(), s.AddNode(), s.AddNode()
	require.NoError(t, s.AddEdge(a, b, 1))
	require.NoError(t, s.AddEdge(b, c, 1))
	require.NoError(t, s.AddEdge(c, a, 1))

	n := s.SlotCount()
	skewed := make([]float64, n)
	skewed[a] = 1
	res, err := pagerank.Run(s, skewed, uniform(n), uniform(n), 0.85, 1, 1e-15)
	require.NoError(t, err)
	require.Equal(t, 1, res.Iterations)
	require.False(t, res.Converged)
}
