// File: compact.go
// Role: CompactNodes rewrites the node table so live nodes occupy a
//       contiguous prefix, and Clear resets a store to empty.
package core

// CompactNodes is a no-op if NumNodes() already equals SlotCount().
// Otherwise it rewrites the node table so live nodes occupy indices
// 0..NumNodes()-1, preserving their relative order, and rewrites every
// live edge's src/dst fields to the new ids. Chain topology (the arena
// indices linking edges to each other) is untouched — only the node ids
// referenced by edges and by the node table itself change.
//
// Returns oldToNew, indexed by pre-compaction id, holding the
// post-compaction id or -1 if that node was removed. Callers that keep a
// name→index mapping alongside the store (see package graph) use this to
// re-key in a single pass instead of re-deriving the compaction order.
//
// Complexity: O(SlotCount() + NumEdges()).
func (s *Store) CompactNodes() []int {
	oldToNew := make([]int, len(s.nodes))
	if s.numNodes == len(s.nodes) {
		for i := range oldToNew {
			oldToNew[i] = i
		}
		return oldToNew
	}

	newNodes := make([]nodeRecord, 0, s.numNodes)
	newID := 0
	for oldID := range s.nodes {
		if !s.nodes[oldID].live {
			oldToNew[oldID] = -1
			continue
		}
		oldToNew[oldID] = newID
		rec := s.nodes[oldID]
		rec.id = newID
		newNodes = append(newNodes, rec)
		newID++
	}
	s.nodes = newNodes

	for i := range s.edges {
		if !s.edges[i].alive {
			continue
		}
		s.edges[i].src = oldToNew[s.edges[i].src]
		s.edges[i].dst = oldToNew[s.edges[i].dst]
	}

	return oldToNew
}

// Clear resets the store to empty: no nodes, no edges, no vacant slots
// and no free-list entries. Preallocated capacity from NewStore is not
// retained by this implementation — Clear allocates fresh, empty arenas.
//
// Complexity: O(1).
func (s *Store) Clear() {
	s.nodes = nil
	s.edges = nil
	s.freeEdges = nil
	s.numNodes = 0
	s.numEdges = 0
}
