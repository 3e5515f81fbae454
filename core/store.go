// File: store.go
// Role: node/edge lifecycle (add/remove/lookup) and chain splicing for the
//       adjacency store.
//
// Splicing discipline: both the per-source and per-destination chains are
// doubly linked and headed at the node. Head insertion is O(1); removal
// given the edge's arena index is O(1). Every insertion/removal updates
// both chains symmetrically, which is what keeps NumEdges() equal to the
// sum of out-degrees and, separately, to the sum of in-degrees.
package core

// AddNode appends a new live node to the end of the node table and
// returns its index. Indices are never reused across a node's lifetime —
// only CompactNodes ever changes them, and only for all nodes at once.
//
// Complexity: O(1) amortized.
func (s *Store) AddNode() int {
	id := len(s.nodes)
	s.nodes = append(s.nodes, nodeRecord{
		id:      id,
		live:    true,
		outHead: nullEdge,
		inHead:  nullEdge,
	})
	s.numNodes++

	return id
}

// GetNode returns a snapshot of node id, or ErrNodeNotFound if id is out
// of range or vacant.
//
// Complexity: O(1).
func (s *Store) GetNode(id int) (Node, error) {
	if !s.nodeLive(id) {
		return Node{}, ErrNodeNotFound
	}
	n := s.nodes[id]

	return Node{ID: n.id, InDegree: n.inDeg, OutDegree: n.outDeg}, nil
}

func (s *Store) nodeLive(id int) bool {
	return id >= 0 && id < len(s.nodes) && s.nodes[id].live
}

// AddEdge validates that both endpoints are live and that no edge already
// exists between them, then splices a new edge record onto the head of
// both the src outgoing chain and the dst incoming chain.
//
// Fails with ErrUnknownEndpoint if either endpoint is not live, or
// ErrDuplicateEdge if an edge (src, dst) already exists.
//
// Complexity: O(out-degree of src) to check for a duplicate; O(1) to
// splice once the check passes.
func (s *Store) AddEdge(src, dst int, weight float64) error {
	if !s.nodeLive(src) || !s.nodeLive(dst) {
		return ErrUnknownEndpoint
	}
	if _, found := s.findEdge(src, dst); found {
		return ErrDuplicateEdge
	}

	idx := s.allocEdge()
	e := &s.edges[idx]
	e.alive = true
	e.src = src
	e.dst = dst
	e.weight = weight

	s.spliceInSrc(idx, src)
	s.spliceInDst(idx, dst)
	s.numEdges++

	return nil
}

// RemoveEdge locates the edge (src, dst) by walking the shorter of src's
// outgoing chain and dst's incoming chain, unsplices it from both chains,
// and frees its arena slot for reuse.
//
// Fails with ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(min(out-degree of src, in-degree of dst)).
func (s *Store) RemoveEdge(src, dst int) error {
	idx, found := s.findEdge(src, dst)
	if !found {
		return ErrEdgeNotFound
	}

	s.spliceOutSrc(idx, src)
	s.spliceOutDst(idx, dst)
	s.freeEdge(idx)
	s.numEdges--

	return nil
}

// GetEdge returns a snapshot of the edge (src, dst), or ErrEdgeNotFound.
//
// Complexity: O(out-degree of src).
func (s *Store) GetEdge(src, dst int) (Edge, error) {
	idx, found := s.findEdge(src, dst)
	if !found {
		return Edge{}, ErrEdgeNotFound
	}
	e := s.edges[idx]

	return Edge{Src: e.src, Dst: e.dst, Weight: e.weight}, nil
}

// UpdateEdgeWeight overwrites the weight of the existing edge (src, dst).
// Fails with ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(out-degree of src).
func (s *Store) UpdateEdgeWeight(src, dst int, weight float64) error {
	idx, found := s.findEdge(src, dst)
	if !found {
		return ErrEdgeNotFound
	}
	s.edges[idx].weight = weight

	return nil
}

// RemoveNode walks id's outgoing chain, unsplicing each edge from its
// destination's incoming chain and freeing it, then walks id's (now
// possibly shortened, in the self-loop case) incoming chain the same way
// against sources, and finally marks the slot vacant. Neighboring nodes'
// indices are unaffected — that stability is the entire point of leaving
// a hole instead of shifting the table.
//
// Fails with ErrNodeNotFound if id is out of range or already vacant.
//
// Complexity: O(out-degree(id) + in-degree(id)).
func (s *Store) RemoveNode(id int) error {
	if !s.nodeLive(id) {
		return ErrNodeNotFound
	}

	// Outgoing chain: unsplice each edge from its dst's incoming chain.
	// A self-loop (dst == id) is removed here, which also detaches it
	// from id's own incoming chain before that chain is walked below.
	next := s.nodes[id].outHead
	for next != nullEdge {
		idx := next
		dst := s.edges[idx].dst
		next = s.edges[idx].nextSameSrc
		s.spliceOutDst(idx, dst)
		s.freeEdge(idx)
		s.numEdges--
	}
	s.nodes[id].outHead = nullEdge
	s.nodes[id].outDeg = 0

	// Incoming chain: unsplice each remaining edge from its src's
	// outgoing chain.
	next = s.nodes[id].inHead
	for next != nullEdge {
		idx := next
		src := s.edges[idx].src
		next = s.edges[idx].nextSameDst
		s.spliceOutSrc(idx, src)
		s.freeEdge(idx)
		s.numEdges--
	}
	s.nodes[id].inHead = nullEdge
	s.nodes[id].inDeg = 0

	s.nodes[id].live = false
	s.numNodes--

	return nil
}

// WalkOut calls fn(dst, weight) for every outgoing edge of id, in chain
// (most-recently-added-first) order, stopping early if fn returns false.
// It performs no allocation, unlike OutEdges.
//
// Complexity: O(out-degree(id)).
func (s *Store) WalkOut(id int, fn func(dst int, weight float64) bool) {
	for idx := s.nodes[id].outHead; idx != nullEdge; idx = s.edges[idx].nextSameSrc {
		if !fn(s.edges[idx].dst, s.edges[idx].weight) {
			return
		}
	}
}

// WalkIn calls fn(src, weight) for every incoming edge of id, stopping
// early if fn returns false.
//
// Complexity: O(in-degree(id)).
func (s *Store) WalkIn(id int, fn func(src int, weight float64) bool) {
	for idx := s.nodes[id].inHead; idx != nullEdge; idx = s.edges[idx].nextSameDst {
		if !fn(s.edges[idx].src, s.edges[idx].weight) {
			return
		}
	}
}

// OutEdges returns a freshly allocated snapshot of id's outgoing edges.
//
// Complexity: O(out-degree(id)).
func (s *Store) OutEdges(id int) []Edge {
	out := make([]Edge, 0, s.nodes[id].outDeg)
	s.WalkOut(id, func(dst int, weight float64) bool {
		out = append(out, Edge{Src: id, Dst: dst, Weight: weight})
		return true
	})

	return out
}

// InEdges returns a freshly allocated snapshot of id's incoming edges.
//
// Complexity: O(in-degree(id)).
func (s *Store) InEdges(id int) []Edge {
	in := make([]Edge, 0, s.nodes[id].inDeg)
	s.WalkIn(id, func(src int, weight float64) bool {
		in = append(in, Edge{Src: src, Dst: id, Weight: weight})
		return true
	})

	return in
}

// findEdge locates the arena index of the edge (src, dst), walking
// whichever chain is shorter: src's outgoing chain or dst's incoming
// chain. Returns (0, false) if either endpoint is not live or no such
// edge exists.
func (s *Store) findEdge(src, dst int) (int, bool) {
	if !s.nodeLive(src) || !s.nodeLive(dst) {
		return 0, false
	}

	if s.nodes[src].outDeg <= s.nodes[dst].inDeg {
		for idx := s.nodes[src].outHead; idx != nullEdge; idx = s.edges[idx].nextSameSrc {
			if s.edges[idx].dst == dst {
				return idx, true
			}
		}
		return 0, false
	}

	for idx := s.nodes[dst].inHead; idx != nullEdge; idx = s.edges[idx].nextSameDst {
		if s.edges[idx].src == src {
			return idx, true
		}
	}

	return 0, false
}

func (s *Store) allocEdge() int {
	n := len(s.freeEdges)
	if n == 0 {
		idx := len(s.edges)
		s.edges = append(s.edges, edgeRecord{})
		return idx
	}
	idx := s.freeEdges[n-1]
	s.freeEdges = s.freeEdges[:n-1]

	return idx
}

func (s *Store) freeEdge(idx int) {
	s.edges[idx] = edgeRecord{}
	s.freeEdges = append(s.freeEdges, idx)
}

func (s *Store) spliceInSrc(idx, node int) {
	n := &s.nodes[node]
	e := &s.edges[idx]
	e.prevSameSrc = nullEdge
	e.nextSameSrc = n.outHead
	if n.outHead != nullEdge {
		s.edges[n.outHead].prevSameSrc = idx
	}
	n.outHead = idx
	n.outDeg++
}

func (s *Store) spliceOutSrc(idx, node int) {
	n := &s.nodes[node]
	e := &s.edges[idx]
	if e.prevSameSrc != nullEdge {
		s.edges[e.prevSameSrc].nextSameSrc = e.nextSameSrc
	} else {
		n.outHead = e.nextSameSrc
	}
	if e.nextSameSrc != nullEdge {
		s.edges[e.nextSameSrc].prevSameSrc = e.prevSameSrc
	}
	n.outDeg--
}

func (s *Store) spliceInDst(idx, node int) {
	n := &s.nodes[node]
	e := &s.edges[idx]
	e.prevSameDst = nullEdge
	e.nextSameDst = n.inHead
	if n.inHead != nullEdge {
		s.edges[n.inHead].prevSameDst = idx
	}
	n.inHead = idx
	n.inDeg++
}

func (s *Store) spliceOutDst(idx, node int) {
	n := &s.nodes[node]
	e := &s.edges[idx]
	if e.prevSameDst != nullEdge {
		s.edges[e.prevSameDst].nextSameDst = e.nextSameDst
	} else {
		n.inHead = e.nextSameDst
	}
	if e.nextSameDst != nullEdge {
		s.edges[e.nextSameDst].prevSameDst = e.prevSameDst
	}
	n.inDeg--
}
