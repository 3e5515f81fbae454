package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valtrix-labs/pagegraph/registry"
)

func TestRegistry_BindAndLookup(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.CheckNodeAvailable("A"))
	r.Bind("A", 0)

	idx, ok := r.IndexOf("A")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	name, ok := r.NameOf(0)
	require.True(t, ok)
	require.Equal(t, "A", name)

	require.ErrorIs(t, r.CheckNodeAvailable("A"), registry.ErrNodeExists)
}

func TestRegistry_UnboundNodeIsMissing(t *testing.T) {
	r := registry.New()
	require.ErrorIs(t, r.CheckNodePresent("A"), registry.ErrNodeMissing)
}

func TestRegistry_EdgePresence(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.CheckEdgeAvailable("A", "B"))
	r.Mark("A", "B")
	require.True(t, r.HasEdge("A", "B"))
	require.ErrorIs(t, r.CheckEdgeAvailable("A", "B"), registry.ErrEdgeExists)

	r.Unmark("A", "B")
	require.False(t, r.HasEdge("A", "B"))
	require.ErrorIs(t, r.CheckEdgePresent("A", "B"), registry.ErrEdgeMissing)
}

func TestRegistry_UnmarkAllFromRemovesIncidentEdges(t *testing.T) {
	r := registry.New()
	r.Mark("A", "B")
	r.Mark("B", "C")
	r.Mark("C", "A")
	r.UnmarkAllFrom("B")
	require.False(t, r.HasEdge("A", "B"))
	require.False(t, r.HasEdge("B", "C"))
	require.True(t, r.HasEdge("C", "A"))
}

func TestRegistry_RebuildAfterCompaction(t *testing.T) {
	r := registry.New()
	r.Bind("A", 0)
	r.Bind("B", 2)
	// simulate a compaction that dropped old index 1
	oldToNew := []int{0, -1, 1}
	r.RebuildAfterCompaction(oldToNew)

	idx, ok := r.IndexOf("A")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	idx, ok = r.IndexOf("B")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	name, ok := r.NameOf(1)
	require.True(t, ok)
	require.Equal(t, "B", name)
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := registry.New()
	r.Bind("C", 2)
	r.Bind("A", 0)
	r.Bind("B", 1)
	require.Equal(t, []string{"A", "B", "C"}, r.Names())
}
