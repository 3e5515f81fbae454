// File: registry.go
// Role: name<->index bookkeeping and edge-presence set.
package registry

import "sort"

// edgeKey identifies an edge by its endpoint names, mirroring the
// adjacency store's existence check but keyed by name instead of index.
type edgeKey struct {
	src string
	dst string
}

// Registry is the bidirectional name<->index mapping (component D of the
// design). It holds no reference to any core.Store; callers coordinate
// registry checks with store mutations themselves (see package graph).
type Registry struct {
	name2idx map[string]int
	idx2name map[int]string
	edges    map[edgeKey]struct{}
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		name2idx: make(map[string]int),
		idx2name: make(map[int]string),
		edges:    make(map[edgeKey]struct{}),
	}
}

// Contains reports whether name is currently bound to a node index.
func (r *Registry) Contains(name string) bool {
	_, ok := r.name2idx[name]
	return ok
}

// IndexOf returns the index bound to name, if any.
func (r *Registry) IndexOf(name string) (int, bool) {
	idx, ok := r.name2idx[name]
	return idx, ok
}

// NameOf returns the name bound to idx, if any.
func (r *Registry) NameOf(idx int) (string, bool) {
	name, ok := r.idx2name[idx]
	return name, ok
}

// CheckNodeAvailable returns ErrNodeExists if name is already bound.
// Callers invoke this before mutating the adjacency store, so a rejected
// AddNode never touches the store.
func (r *Registry) CheckNodeAvailable(name string) error {
	if r.Contains(name) {
		return ErrNodeExists
	}
	return nil
}

// Bind records that name is now bound to idx. Callers must have already
// validated availability with CheckNodeAvailable and created the node in
// the adjacency store.
func (r *Registry) Bind(name string, idx int) {
	r.name2idx[name] = idx
	r.idx2name[idx] = name
}

// CheckNodePresent returns ErrNodeMissing if name is not bound.
func (r *Registry) CheckNodePresent(name string) error {
	if !r.Contains(name) {
		return ErrNodeMissing
	}
	return nil
}

// Unbind removes name's binding and returns the index it was bound to.
// Callers must have already validated presence with CheckNodePresent.
func (r *Registry) Unbind(name string) int {
	idx := r.name2idx[name]
	delete(r.name2idx, name)
	delete(r.idx2name, idx)
	return idx
}

// CheckEdgeAvailable returns ErrEdgeExists if (src, dst) is already
// recorded as present.
func (r *Registry) CheckEdgeAvailable(src, dst string) error {
	if _, ok := r.edges[edgeKey{src, dst}]; ok {
		return ErrEdgeExists
	}
	return nil
}

// Mark records that an edge (src, dst) now exists.
func (r *Registry) Mark(src, dst string) {
	r.edges[edgeKey{src, dst}] = struct{}{}
}

// CheckEdgePresent returns ErrEdgeMissing if (src, dst) is not recorded.
func (r *Registry) CheckEdgePresent(src, dst string) error {
	if _, ok := r.edges[edgeKey{src, dst}]; !ok {
		return ErrEdgeMissing
	}
	return nil
}

// HasEdge reports whether (src, dst) is recorded as present.
func (r *Registry) HasEdge(src, dst string) bool {
	_, ok := r.edges[edgeKey{src, dst}]
	return ok
}

// Unmark removes the (src, dst) edge record.
func (r *Registry) Unmark(src, dst string) {
	delete(r.edges, edgeKey{src, dst})
}

// UnmarkAllFrom removes every recorded edge touching name, as either
// endpoint. Called by the facade when a node is removed, since node
// removal cascades to every incident edge in the adjacency store.
func (r *Registry) UnmarkAllFrom(name string) {
	for k := range r.edges {
		if k.src == name || k.dst == name {
			delete(r.edges, k)
		}
	}
}

// Names returns every bound name, sorted for deterministic iteration.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.name2idx))
	for name := range r.name2idx {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of bound names.
func (r *Registry) Len() int { return len(r.name2idx) }

// Edges returns every recorded (src, dst) pair as a sorted slice of
// 2-element arrays, sorted lexicographically by (src, dst).
func (r *Registry) Edges() [][2]string {
	out := make([][2]string, 0, len(r.edges))
	for k := range r.edges {
		out = append(out, [2]string{k.src, k.dst})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// RebuildAfterCompaction re-keys every name binding using oldToNew, the
// mapping returned by core.Store.CompactNodes (old index -> new index).
// Every name still bound in the registry refers to a node that survived
// compaction (removed nodes are unbound by the facade at removal time),
// so no entry maps to -1 here.
//
// Complexity: O(len(name2idx)).
func (r *Registry) RebuildAfterCompaction(oldToNew []int) {
	newIdx2name := make(map[int]string, len(r.idx2name))
	for name, oldIdx := range r.name2idx {
		newIdx := oldToNew[oldIdx]
		r.name2idx[name] = newIdx
		newIdx2name[newIdx] = name
	}
	r.idx2name = newIdx2name
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.name2idx = make(map[string]int)
	r.idx2name = make(map[int]string)
	r.edges = make(map[edgeKey]struct{})
}
